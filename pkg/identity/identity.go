package identity

import (
	"context"
	"net"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated user for a request.
type Identity struct {
	// UserID is the stable identifier of the authenticated user.
	UserID string

	// RemoteIP is the client address, for audit trails.
	RemoteIP net.IP
}

// New creates an Identity for a user id.
func New(userID string) *Identity {
	return &Identity{UserID: userID}
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
