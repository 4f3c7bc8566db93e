package membership

import (
	"fmt"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Transfers moves holograph ownership. Only the current owner may
// transfer, and the new owner becomes a principal if they are not one
// already.
type Transfers struct {
	holographs store.HolographsStore
	users      store.UsersStore
}

func NewTransfers(holographs store.HolographsStore, users store.UsersStore) *Transfers {
	return &Transfers{holographs: holographs, users: users}
}

// Transfer reassigns ownership of the holograph to newOwnerID and
// records the change in the ownership audit trail.
func (s *Transfers) Transfer(actorID, holographID, newOwnerID string) error {
	h, err := s.holographs.Fetch(holographID)
	if err != nil {
		return err
	}
	if h.OwnerID != actorID {
		err = fmt.Errorf("only the owner can transfer holograph %q: %w", holographID, access.ErrDenied)
		s.logTransfer(holographID, actorID, newOwnerID, err)
		return err
	}
	if newOwnerID == actorID {
		return fmt.Errorf("holograph %q already belongs to %q: %w", holographID, newOwnerID, access.ErrValidation)
	}

	if _, err := s.users.ByID(newOwnerID); err != nil {
		s.logTransfer(holographID, actorID, newOwnerID, err)
		return err
	}

	// The store locks the holograph row, flips the owner, upserts the
	// new owner as a principal and appends the audit row in one
	// transaction.
	if _, err := s.holographs.TransferOwnership(holographID, newOwnerID); err != nil {
		s.logTransfer(holographID, actorID, newOwnerID, err)
		return err
	}

	s.logTransfer(holographID, actorID, newOwnerID, nil)
	return nil
}

func (s *Transfers) logTransfer(holographID, fromID, toID string, err error) {
	event := audit.OwnershipTransferEvent{
		HolographID: holographID,
		FromUserID:  fromID,
		ToUserID:    toID,
		Success:     err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}
