// Package middleware provides HTTP middleware for the Holograph server.
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/ankush-tewari/holograph/pkg/config"
	"github.com/ankush-tewari/holograph/pkg/identity"
)

// UserHeader carries the authenticated user id, set by the fronting
// proxy after it has verified the session.
const UserHeader = "X-Authenticated-User"

// Authenticator resolves the authenticated user from request headers.
type Authenticator struct {
	Config *config.HolographConfig
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(cfg *config.HolographConfig) *Authenticator {
	return &Authenticator{Config: cfg}
}

// Middleware returns an HTTP middleware that requires the user header
// and stores the resulting identity in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserHeader)
		if userID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Authentication missing"))
			return
		}

		id := identity.New(userID).WithRemoteIP(a.clientIP(r))
		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// clientIP returns the request's client address. X-Forwarded-For is
// honoured only when the direct peer is a trusted proxy.
func (a *Authenticator) clientIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer := net.ParseIP(host)

	if a.Config != nil && a.Config.IsTrustedProxy(host) {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			// The client is the first address in the chain.
			first := strings.TrimSpace(strings.Split(fwd, ",")[0])
			if ip := net.ParseIP(first); ip != nil {
				return ip
			}
		}
	}
	return peer
}
