// Package identity carries the authenticated caller through a request's context.
package identity

import "context"

type contextKey struct{}

// Identity is the authenticated user acting in a request
type Identity struct {
	UserID int64
}

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored in ctx, if any
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// Clear returns a copy of ctx in which no identity is visible
func Clear(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, nil)
}
