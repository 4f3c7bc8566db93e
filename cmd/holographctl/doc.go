// Package main provides the holographctl CLI for the Holograph estate-records server.
//
// Holograph is a multi-tenant application for storing a person's estate
// records. Each holograph is one tenant: its records are envelope-encrypted
// under per-holograph key material, and access is mediated between the
// owner, fellow principals and view-only delegates.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/access: Role checks and the section permission registry
//   - pkg/membership: Invitation, removal and ownership-transfer workflows
//   - pkg/records: Encrypted record sections and file attachments
//   - pkg/envelope: Envelope encryption primitives
//   - pkg/keys: Per-holograph key material lifecycle
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the holographctl CLI:
//
//	# Run database migrations
//	holographctl db migrate
//
//	# Start the server
//	holographctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - HOLOGRAPH_KEYS_DIR: Directory for per-holograph key material and attachments
//   - HOLOGRAPH_TRUSTED_PROXIES: Comma-separated proxies allowed to set X-Forwarded-For
//   - HOLOGRAPH_AUDIT_ENABLED: Enable audit logging (default: true)
//   - HOLOGRAPH_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main
