package endpoints

import (
	"net/http"

	"github.com/ankush-tewari/holograph/pkg/server"
	"github.com/ankush-tewari/holograph/pkg/server/middleware"
)

// Paths reachable without authentication.
var publicPaths = map[string]bool{
	"/":       true,
	"/health": true,
	"/users":  true,
}

// RegisterAll registers all API endpoints on the server. Every route
// except the status endpoints requires an authenticated user.
func RegisterAll(srv *server.Server) {
	auth := middleware.NewAuthenticator(srv.Config)
	srv.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			auth.Middleware(next).ServeHTTP(w, r)
		})
	})

	RegisterStatusEndpoints(srv)
	RegisterUsersEndpoints(srv)
	RegisterHolographsEndpoints(srv)
	RegisterInvitationsEndpoints(srv)
	RegisterRemovalsEndpoints(srv)
	RegisterPermissionsEndpoints(srv)
	RegisterRecordsEndpoints(srv)
}
