// Package audit provides audit logging for Holograph operations.
//
// This package implements structured audit logging for security-relevant
// operations: invitations and responses, principal removal requests,
// ownership transfers, permission changes, key provisioning, and record
// access.
//
// Events are emitted in RFC5424 syslog format to the configured writer,
// and optionally persisted to a dedicated audit database when
// HOLOGRAPH_AUDIT_DATABASE_URL is set.
package audit
