package envelope

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
)

// Keypair is a holograph's RSA keypair used to wrap and unwrap the
// per-field symmetric keys.
type Keypair struct {
	privateKey *rsa.PrivateKey
}

// GenerateKeypair generates a new 2048-bit RSA keypair.
func GenerateKeypair() (*Keypair, error) {
	pkey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	return &Keypair{privateKey: pkey}, nil
}

// NewKeypairFromPem restores a keypair from a PEM-encoded private key.
func NewKeypairFromPem(privatePem []byte) (*Keypair, error) {
	block, _ := pem.Decode(privatePem)
	if block == nil {
		return nil, errors.New("no PEM block in private key")
	}

	pkey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	return &Keypair{privateKey: pkey}, nil
}

// PublicKeyFromPem parses a PEM-encoded RSA public key.
func PublicKeyFromPem(publicPem []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(publicPem)
	if block == nil {
		return nil, errors.New("no PEM block in public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not RSA")
	}

	return rsaPub, nil
}

func (k Keypair) Public() *rsa.PublicKey {
	return &k.privateKey.PublicKey
}

func (k Keypair) Private() *rsa.PrivateKey {
	return k.privateKey
}

func (k Keypair) PrivatePem() []byte {
	return pem.EncodeToMemory(
		&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(k.privateKey),
		},
	)
}

func (k Keypair) PublicPem() []byte {
	bytes, err := x509.MarshalPKIXPublicKey(&k.privateKey.PublicKey)
	if err != nil {
		panic(err)
	}
	return pem.EncodeToMemory(
		&pem.Block{
			Type:  "PUBLIC KEY",
			Bytes: bytes,
		},
	)
}
