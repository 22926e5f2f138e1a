package middleware

import (
	"fmt"
	"net/http"

	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
)

// RequirePermission checks the caller's role against the permission table.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := user.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(identity.Role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
