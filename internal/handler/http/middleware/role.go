package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// IsManager reports whether the access token carries the manager role.
func IsManager(ctx context.Context) bool {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false
	}
	role, ok := claims["role"].(string)
	return ok && jwt.Role(role) == jwt.RoleManager
}

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsManager(r.Context()) {
			response.HandleError(w, response.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
