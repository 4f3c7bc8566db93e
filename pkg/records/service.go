// Package records serves the encrypted estate record sections. Every
// operation is authorized against the access registry before any store
// or cipher work happens, so denied callers learn nothing about the
// records they asked for.
package records

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/fieldcipher"
	"github.com/ankush-tewari/holograph/pkg/objectstore"
	"github.com/ankush-tewari/holograph/pkg/store"
)

const deleteRetries = 3

// Service reads and writes estate records, encrypting descriptive
// fields on the way in and decrypting on the way out.
type Service struct {
	registry *access.Registry
	cipher   *fieldcipher.Cipher
	records  store.RecordsStore
	files    objectstore.Store
	now      func() time.Time
}

func NewService(registry *access.Registry, cipher *fieldcipher.Cipher, records store.RecordsStore, files objectstore.Store) *Service {
	return &Service{
		registry: registry,
		cipher:   cipher,
		records:  records,
		files:    files,
		now:      time.Now,
	}
}

func (s *Service) authorizeRead(holographID, userID, sectionID string) error {
	err := s.registry.CanRead(holographID, userID, sectionID)
	if err != nil {
		s.logAccess(holographID, userID, sectionID, "", "read", err)
	}
	return err
}

func (s *Service) authorizeWrite(holographID, userID, sectionID, operation string) error {
	err := s.registry.CanWrite(holographID, userID, sectionID)
	if err != nil {
		s.logAccess(holographID, userID, sectionID, "", operation, err)
	}
	return err
}

func (s *Service) logAccess(holographID, userID, sectionID, recordID, operation string, err error) {
	event := audit.RecordAccessEvent{
		HolographID: holographID,
		UserID:      userID,
		SectionID:   sectionID,
		RecordID:    recordID,
		Operation:   operation,
		Success:     err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}

// deleteObject removes a stored file, retrying transient failures. The
// object is removed before any database pointer to it is cleared, so a
// failure here leaves the pointer intact rather than dangling.
func (s *Service) deleteObject(ctx context.Context, path string) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), deleteRetries),
		ctx,
	)
	err := backoff.Retry(func() error {
		return s.files.Delete(ctx, path)
	}, policy)
	if err != nil {
		return fmt.Errorf("deleting stored file %s: %w", path, err)
	}
	return nil
}
