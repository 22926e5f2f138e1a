package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	"github.com/madison-jay/edike-backend/internal/pkg/jwt"
)

// Identity verifies the bearer token and attaches the resolved caller
// identity to the request context. Everything behind it can rely on
// user.FromContext succeeding.
func Identity(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			identity, err := jwtService.IdentityFromClaims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(user.NewContext(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
