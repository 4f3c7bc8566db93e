package envelope

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	symKeySize = 32
	ivSize     = aes.BlockSize
)

// ErrDecryptionFailure is returned whenever a field cannot be decrypted,
// regardless of which step failed. Callers decide how to render it; no
// partial plaintext is ever returned.
var ErrDecryptionFailure = errors.New("field decryption failed")

// Field is the persisted form of an encrypted value: the AES-256-CBC
// ciphertext, the RSA-OAEP wrapped symmetric key, and the IV, all
// base64-encoded.
type Field struct {
	Ciphertext string `gorm:"column:ciphertext" json:"ciphertext"`
	WrappedKey string `gorm:"column:wrapped_key" json:"wrappedKey"`
	IV         string `gorm:"column:iv" json:"iv"`
}

// IsZero reports whether no encrypted value is present.
func (f Field) IsZero() bool {
	return f.Ciphertext == "" && f.WrappedKey == "" && f.IV == ""
}

// Encrypt envelope-encrypts plaintext under a fresh random symmetric key
// and IV. The symmetric key is wrapped with the supplied RSA public key
// using OAEP (SHA-256). Identical input never yields identical output.
func Encrypt(pub *rsa.PublicKey, plaintext []byte) (Field, error) {
	symKey, err := RandomBytes(symKeySize)
	if err != nil {
		return Field{}, err
	}

	iv, err := RandomBytes(ivSize)
	if err != nil {
		return Field{}, err
	}

	block, err := aes.NewCipher(symKey)
	if err != nil {
		return Field{}, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	cipherText := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(cipherText, padded)

	wrappedKey, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, symKey, nil)
	if err != nil {
		return Field{}, fmt.Errorf("key wrap failed: %w", err)
	}

	return Field{
		Ciphertext: base64.StdEncoding.EncodeToString(cipherText),
		WrappedKey: base64.StdEncoding.EncodeToString(wrappedKey),
		IV:         base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt unwraps the field's symmetric key with kp's private key and
// decrypts the ciphertext. It fails closed: every malformed component,
// unwrap error, or padding error yields ErrDecryptionFailure.
func (k Keypair) Decrypt(f Field) ([]byte, error) {
	cipherText, err := base64.StdEncoding.DecodeString(f.Ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailure
	}

	wrappedKey, err := base64.StdEncoding.DecodeString(f.WrappedKey)
	if err != nil {
		return nil, ErrDecryptionFailure
	}

	iv, err := base64.StdEncoding.DecodeString(f.IV)
	if err != nil {
		return nil, ErrDecryptionFailure
	}

	symKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, k.privateKey, wrappedKey, nil)
	if err != nil {
		return nil, ErrDecryptionFailure
	}

	if len(iv) != ivSize || len(cipherText) == 0 || len(cipherText)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailure
	}

	block, err := aes.NewCipher(symKey)
	if err != nil {
		return nil, ErrDecryptionFailure
	}

	plaintext := make([]byte, len(cipherText))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, cipherText)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, ErrDecryptionFailure
	}

	return plaintext, nil
}

// Decrypt is the package-level form of Keypair.Decrypt.
func Decrypt(kp *Keypair, f Field) ([]byte, error) {
	return kp.Decrypt(f)
}

// RandomBytes returns size bytes from the system CSPRNG.
func RandomBytes(size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, value); err != nil {
		return nil, err
	}

	return value, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errors.New("invalid padding")
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("invalid padding")
		}
	}

	return data[:len(data)-padLen], nil
}
