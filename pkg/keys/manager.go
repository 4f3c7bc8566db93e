package keys

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ankush-tewari/holograph/pkg/envelope"
	"github.com/ankush-tewari/holograph/pkg/objectstore"
)

// ErrKeyNotFound is returned when a holograph has never had keys generated.
var ErrKeyNotFound = errors.New("key material not found")

// ErrKeyGeneration is returned when keypair generation itself fails.
var ErrKeyGeneration = errors.New("key generation failed")

// ErrStorage is returned once the storage retry budget is exhausted.
var ErrStorage = errors.New("key storage failure")

const (
	publicKeyObject    = "public.crt"
	privateKeyObject   = "private.key"
	symmetricKeyObject = "aes.key"

	// Single fixed label. Rotation would introduce more.
	currentLabel = "current"

	symmetricKeySize = 32
)

func materialPath(holographID, object string) string {
	return path.Join("ssl-keys", holographID, currentLabel, object)
}

// MaterialPaths returns the object-store locations of a holograph's key
// material.
func MaterialPaths(holographID string) (publicKey, privateKey, symmetricKey string) {
	return materialPath(holographID, publicKeyObject),
		materialPath(holographID, privateKeyObject),
		materialPath(holographID, symmetricKeyObject)
}

// Manager generates and retrieves per-holograph key material.
type Manager struct {
	store      objectstore.Store
	opTimeout  time.Duration
	maxRetries uint64

	mu    sync.Mutex
	cache map[string]*envelope.Keypair
}

// Option configures a Manager.
type Option func(*Manager)

// WithOpTimeout bounds each storage operation, retries included.
func WithOpTimeout(d time.Duration) Option {
	return func(m *Manager) { m.opTimeout = d }
}

// WithMaxRetries caps retry attempts for transient storage failures.
func WithMaxRetries(n uint64) Option {
	return func(m *Manager) { m.maxRetries = n }
}

// NewManager creates a key manager over the given object store.
func NewManager(store objectstore.Store, opts ...Option) *Manager {
	m := &Manager{
		store:      store,
		opTimeout:  10 * time.Second,
		maxRetries: 3,
		cache:      map[string]*envelope.Keypair{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ensure generates key material for the holograph if none exists yet.
// Concurrent callers race on a create-if-absent write of the private key;
// exactly one wins, the rest wait for the winner's material to land.
func (m *Manager) Ensure(ctx context.Context, holographID string) error {
	ctx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	kp, err := envelope.GenerateKeypair()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	symKey, err := envelope.RandomBytes(symmetricKeySize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	privatePath := materialPath(holographID, privateKeyObject)

	var created bool
	err = m.retry(ctx, func() error {
		var opErr error
		created, opErr = m.store.PutIfAbsent(ctx, privatePath, kp.PrivatePem())
		return opErr
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if !created {
		// Lost the race (or keys already existed); the stored material
		// wins. The winner uploads the public key after the private key,
		// so wait for it before reporting the material as ready.
		if err := m.retry(ctx, func() error {
			_, opErr := m.store.Get(ctx, materialPath(holographID, publicKeyObject))
			return opErr
		}); err != nil {
			return fmt.Errorf("%w: waiting for key material: %v", ErrStorage, err)
		}
		return nil
	}

	uploads := map[string][]byte{
		materialPath(holographID, publicKeyObject):    kp.PublicPem(),
		materialPath(holographID, symmetricKeyObject): symKey,
	}
	for objectPath, data := range uploads {
		if err := m.retry(ctx, func() error {
			return m.store.Put(ctx, objectPath, data)
		}); err != nil {
			return m.cleanupPartial(ctx, holographID, err)
		}
	}

	m.mu.Lock()
	m.cache[holographID] = kp
	m.mu.Unlock()

	return nil
}

// cleanupPartial undoes a partial key upload. If cleanup itself fails,
// both errors are reported.
func (m *Manager) cleanupPartial(ctx context.Context, holographID string, cause error) error {
	var cleanupErr error
	for _, object := range []string{privateKeyObject, publicKeyObject, symmetricKeyObject} {
		if err := m.store.Delete(ctx, materialPath(holographID, object)); err != nil && cleanupErr == nil {
			cleanupErr = err
		}
	}

	if cleanupErr != nil {
		return fmt.Errorf("%w: %v (cleanup also failed: %v)", ErrStorage, cause, cleanupErr)
	}
	return fmt.Errorf("%w: %v", ErrStorage, cause)
}

// PublicKey retrieves the holograph's RSA public key.
func (m *Manager) PublicKey(ctx context.Context, holographID string) (*rsa.PublicKey, error) {
	m.mu.Lock()
	if kp, ok := m.cache[holographID]; ok {
		m.mu.Unlock()
		return kp.Public(), nil
	}
	m.mu.Unlock()

	data, err := m.fetch(ctx, materialPath(holographID, publicKeyObject))
	if err != nil {
		return nil, err
	}

	pub, err := envelope.PublicKeyFromPem(data)
	if err != nil {
		return nil, fmt.Errorf("stored public key is malformed: %w", err)
	}

	return pub, nil
}

// Keypair retrieves the holograph's full keypair for decryption.
func (m *Manager) Keypair(ctx context.Context, holographID string) (*envelope.Keypair, error) {
	m.mu.Lock()
	if kp, ok := m.cache[holographID]; ok {
		m.mu.Unlock()
		return kp, nil
	}
	m.mu.Unlock()

	data, err := m.fetch(ctx, materialPath(holographID, privateKeyObject))
	if err != nil {
		return nil, err
	}

	kp, err := envelope.NewKeypairFromPem(data)
	if err != nil {
		return nil, fmt.Errorf("stored private key is malformed: %w", err)
	}

	m.mu.Lock()
	m.cache[holographID] = kp
	m.mu.Unlock()

	return kp, nil
}

// SymmetricKey retrieves the holograph's random symmetric value.
func (m *Manager) SymmetricKey(ctx context.Context, holographID string) ([]byte, error) {
	return m.fetch(ctx, materialPath(holographID, symmetricKeyObject))
}

// Exists reports whether the holograph already has key material.
func (m *Manager) Exists(ctx context.Context, holographID string) (bool, error) {
	m.mu.Lock()
	if _, ok := m.cache[holographID]; ok {
		m.mu.Unlock()
		return true, nil
	}
	m.mu.Unlock()

	_, err := m.fetch(ctx, materialPath(holographID, privateKeyObject))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	return false, err
}

func (m *Manager) fetch(ctx context.Context, objectPath string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	var data []byte
	err := m.retry(ctx, func() error {
		var opErr error
		data, opErr = m.store.Get(ctx, objectPath)
		if errors.Is(opErr, objectstore.ErrNotFound) {
			return backoff.Permanent(opErr)
		}
		return opErr
	})
	if err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			return nil, fmt.Errorf("%q: %w", objectPath, ErrKeyNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return data, nil
}

func (m *Manager) retry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, m.maxRetries), ctx))
}
