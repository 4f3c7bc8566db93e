// Package envelope provides the cryptographic operations for Holograph.
//
// Every sensitive field is protected with envelope encryption: a fresh
// random symmetric key encrypts the field value, and that key is in turn
// wrapped with the holograph's long-lived RSA public key. Decryption
// unwraps the symmetric key with the private key and then decrypts the
// value.
//
// # Key Management
//
// Each holograph owns a single RSA-2048 keypair:
//
//	kp, err := envelope.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// PEM forms for storage
//	publicPEM := kp.PublicPem()
//	privatePEM := kp.PrivatePem()
//
// # Field Encryption
//
// Fields are encrypted with AES-256-CBC under a per-call key and IV, and
// the key is wrapped with RSA-OAEP (SHA-256):
//
//	field, err := envelope.Encrypt(kp.Public(), []byte("Dr. A. Ramsey"))
//
//	plaintext, err := envelope.Decrypt(kp, field)
//
// Encryption is randomized: two calls with identical plaintext never
// produce the same ciphertext or IV. Decryption fails closed; any unwrap
// or decrypt error surfaces as ErrDecryptionFailure with no partial
// output.
package envelope
