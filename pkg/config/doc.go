// Package config provides configuration management for Holograph.
//
// This package handles loading and validating Holograph server
// configuration from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - HOLOGRAPH_KEYS_DIR: Root directory of the key/file object store
//   - HOLOGRAPH_TRUSTED_PROXIES: CIDR ranges allowed to set client headers
//   - HOLOGRAPH_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
