// Package identity carries the per-request caller identity supplied by
// the fronting gateway. The engine never authenticates; it only
// authorizes the supplied identity against record ownership fields.
package identity

import (
	"context"
)

// Role defines the marketplace roles understood by the engine.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Identity is the acting user for a single operation.
type Identity struct {
	UserID   string
	Role     Role
	Verified bool
}

// IsAdmin reports whether the caller holds the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

type contextKey struct{}

// NewContext returns a context carrying the identity.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the identity placed by the middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
