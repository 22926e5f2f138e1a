package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/madison-jay/edike-backend/internal/domain/user"
)

// Service verifies bearer tokens issued by the external identity provider.
// Token issuance, refresh and revocation all live upstream; this service only
// validates signatures and maps claims onto a caller identity.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	IdentityFromClaims(claims map[string]interface{}) (user.Identity, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// IdentityFromClaims maps verified token claims onto a user.Identity.
func (j *JWTService) IdentityFromClaims(claims map[string]interface{}) (user.Identity, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Identity{}, user.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	role := user.Role(roleStr)
	if !ok || !role.Valid() {
		return user.Identity{}, user.ErrInvalidToken
	}

	// employee_id is absent for service accounts
	employeeID, _ := claims["employee_id"].(string)

	return user.Identity{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role,
	}, nil
}
