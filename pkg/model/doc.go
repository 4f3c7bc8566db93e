// Package model contains the database models for Holograph.
//
// Sensitive attributes are never persisted in plaintext: every such
// column group is an embedded envelope.Field triple (ciphertext, wrapped
// key, IV). Membership rows (Principal, Delegate, DelegatePermission) are
// keyed by their natural composite keys, matching the uniqueness
// constraints enforced in the schema.
package model
