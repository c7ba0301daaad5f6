package user

import "errors"

var (
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrInvalidToken        = errors.New("invalid or missing access token")
)
