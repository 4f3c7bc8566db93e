// Package fieldcipher encrypts and decrypts individual record fields for
// a holograph, backed by the per-holograph key material in pkg/keys.
package fieldcipher

import (
	"context"
	"errors"
	"fmt"

	"github.com/ankush-tewari/holograph/pkg/envelope"
	"github.com/ankush-tewari/holograph/pkg/keys"
)

// Cipher envelope-encrypts field values under a holograph's keys. Key
// material is created lazily on the first encrypt for a holograph.
type Cipher struct {
	keys *keys.Manager
}

func New(km *keys.Manager) *Cipher {
	return &Cipher{keys: km}
}

// EncryptField encrypts plaintext under a fresh symmetric key wrapped
// with the holograph's public key. A holograph that has never had keys
// generated gets them here, guarded against concurrent first use.
func (c *Cipher) EncryptField(ctx context.Context, holographID string, plaintext []byte) (envelope.Field, error) {
	pub, err := c.keys.PublicKey(ctx, holographID)
	if errors.Is(err, keys.ErrKeyNotFound) {
		if err := c.keys.Ensure(ctx, holographID); err != nil {
			return envelope.Field{}, err
		}
		pub, err = c.keys.PublicKey(ctx, holographID)
	}
	if err != nil {
		return envelope.Field{}, err
	}

	field, err := envelope.Encrypt(pub, plaintext)
	if err != nil {
		return envelope.Field{}, fmt.Errorf("encrypt field for holograph %q: %w", holographID, err)
	}

	return field, nil
}

// DecryptField decrypts a stored field. It fails closed: key-fetch
// errors, unwrap errors, and decrypt errors all surface as
// envelope.ErrDecryptionFailure so callers can render a redacted
// placeholder without special-casing the cause.
func (c *Cipher) DecryptField(ctx context.Context, holographID string, field envelope.Field) ([]byte, error) {
	kp, err := c.keys.Keypair(ctx, holographID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", envelope.ErrDecryptionFailure, err)
	}

	return kp.Decrypt(field)
}

// EncryptString is EncryptField for string values.
func (c *Cipher) EncryptString(ctx context.Context, holographID, plaintext string) (envelope.Field, error) {
	return c.EncryptField(ctx, holographID, []byte(plaintext))
}

// DecryptString is DecryptField for string values.
func (c *Cipher) DecryptString(ctx context.Context, holographID string, field envelope.Field) (string, error) {
	plaintext, err := c.DecryptField(ctx, holographID, field)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
