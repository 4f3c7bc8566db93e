// Package identity carries the authenticated user through a request's
// context.
//
// Authentication itself happens upstream; the server trusts the
// X-Authenticated-User header set by the fronting proxy. The middleware
// turns that header into an Identity and stores it in the context:
//
//	ctx = identity.Set(ctx, identity.New(userID).WithRemoteIP(clientIP))
//
//	id, ok := identity.Get(ctx)
package identity
