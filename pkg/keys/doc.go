// Package keys manages per-holograph key material.
//
// Each holograph owns one RSA-2048 keypair and one random 256-bit
// symmetric value, stored in the object store under a deterministic
// namespace:
//
//	ssl-keys/{holographId}/current/public.crt
//	ssl-keys/{holographId}/current/private.key
//	ssl-keys/{holographId}/current/aes.key
//
// The "current" label is fixed; key rotation is not supported. Initial
// generation is guarded with a create-if-absent write on the private key
// so concurrent first use of a holograph cannot produce two divergent
// keypairs.
package keys
