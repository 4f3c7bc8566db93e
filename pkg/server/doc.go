// Package server provides the HTTP server for the Holograph API.
//
// This package implements the core HTTP server that handles all Holograph
// REST API requests. It uses gorilla/mux for routing and middleware that
// resolves the authenticated user from the fronting proxy's headers.
//
// # Server Setup
//
//	srv := server.NewServer(services, cfg, db, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /holographs - Holograph creation
//   - /holographs/{id} - Holograph metadata and ownership
//   - /holographs/{id}/invitations - Invitation workflow
//   - /holographs/{id}/removals - Principal removal workflow
//   - /holographs/{id}/sections/... - Encrypted record sections
//   - /health - Connectivity check
package server
