package user

import "context"

// Identity is the resolved caller of a request: token claims turned into an
// explicit value threaded through the call chain, never an ambient global.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       Role
}

type contextKey struct{}

// NewContext returns ctx carrying the identity.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the caller identity placed by the auth middleware.
func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, ErrIdentityMissing
	}
	return id, nil
}
