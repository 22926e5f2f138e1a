package user

import "errors"

var (
	ErrIdentityMissing    = errors.New("caller identity missing from request context")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrPermissionRequired = errors.New("insufficient permissions")
)
