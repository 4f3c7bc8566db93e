// Package holograph handles the holograph lifecycle: creation with key
// provisioning, retrieval, and the ownership audit trail.
package holograph

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/keys"
	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Service creates and fetches holographs.
type Service struct {
	registry   *access.Registry
	holographs store.HolographsStore
	users      store.UsersStore
	keys       *keys.Manager
}

func NewService(registry *access.Registry, holographs store.HolographsStore, users store.UsersStore, keyManager *keys.Manager) *Service {
	return &Service{
		registry:   registry,
		holographs: holographs,
		users:      users,
		keys:       keyManager,
	}
}

// Create registers a holograph owned by ownerID and provisions its key
// material. The owner becomes the first principal in the same
// transaction that inserts the holograph row.
func (s *Service) Create(ctx context.Context, ownerID, title string) (*model.Holograph, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", access.ErrValidation)
	}
	if _, err := s.users.ByID(ownerID); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	publicKeyPath, privateKeyPath, symmetricKeyPath := keys.MaterialPaths(id)

	h := &model.Holograph{
		ID:               id,
		Title:            title,
		OwnerID:          ownerID,
		PublicKeyPath:    publicKeyPath,
		PrivateKeyPath:   privateKeyPath,
		SymmetricKeyPath: symmetricKeyPath,
	}
	if err := s.holographs.CreateWithOwner(h); err != nil {
		return nil, err
	}

	// Key material is provisioned eagerly so the first record write
	// never pays the generation cost. Ensure is idempotent and safe
	// against concurrent callers.
	if err := s.keys.Ensure(ctx, id); err != nil {
		audit.Log(audit.KeyGenerationEvent{HolographID: id, Success: false, ErrorMessage: err.Error()})
		return nil, err
	}
	audit.Log(audit.KeyGenerationEvent{HolographID: id, Success: true})

	return h, nil
}

// Fetch returns a holograph the user can see. Any member, principal or
// delegate, may look at the holograph's metadata.
func (s *Service) Fetch(holographID, userID string) (*model.Holograph, error) {
	isPrincipal, err := s.registry.IsPrincipal(holographID, userID)
	if err != nil {
		return nil, err
	}
	if !isPrincipal {
		isDelegate, err := s.registry.IsDelegate(holographID, userID)
		if err != nil {
			return nil, err
		}
		if !isDelegate {
			return nil, access.ErrDenied
		}
	}
	return s.holographs.Fetch(holographID)
}

// OwnershipHistory returns the ownership audit trail, oldest first.
// Only principals may read it.
func (s *Service) OwnershipHistory(holographID, userID string) ([]model.OwnershipAudit, error) {
	if err := s.registry.CanManage(holographID, userID); err != nil {
		return nil, err
	}
	return s.holographs.OwnershipAudit(holographID)
}
