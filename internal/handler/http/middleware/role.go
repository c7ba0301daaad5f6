package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/smartpay/smartpay-backend-go/internal/domain/user"
	"github.com/smartpay/smartpay-backend-go/internal/handler/http/response"
)

// RequireAdmin restricts a route to the ADMIN role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
