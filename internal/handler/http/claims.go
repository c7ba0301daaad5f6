package http

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/smartpay/smartpay-backend-go/internal/domain/user"
)

// claimString pulls a single string claim from the verified token.
func claimString(ctx context.Context, name string) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	value, ok := claims[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s claim is missing or invalid", name)
	}

	return value, nil
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	return claimString(ctx, "employee_id")
}

func staffIDFromContext(ctx context.Context) (string, error) {
	return claimString(ctx, "staff_id")
}

func roleFromContext(ctx context.Context) user.Role {
	role, err := claimString(ctx, "role")
	if err != nil {
		return ""
	}
	return user.Role(role)
}
