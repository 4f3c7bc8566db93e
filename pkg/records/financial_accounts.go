package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/envelope"
	"github.com/ankush-tewari/holograph/pkg/model"
)

// FinancialAccountInput carries the plaintext attributes of a
// financial account record.
type FinancialAccountInput struct {
	Institution string
	AccountName string
	Notes       string
}

// FinancialAccountView is a decrypted financial account record.
type FinancialAccountView struct {
	ID            string
	Institution   string
	AccountName   string
	Notes         string
	DecryptFailed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateFinancialAccount encrypts and stores a new financial account
// record.
func (s *Service) CreateFinancialAccount(ctx context.Context, userID, holographID string, input FinancialAccountInput) (*FinancialAccountView, error) {
	if err := s.authorizeWrite(holographID, userID, model.SectionFinancialAccounts, "write"); err != nil {
		return nil, err
	}
	if input.Institution == "" {
		return nil, fmt.Errorf("institution is required: %w", access.ErrValidation)
	}

	institution, err := s.cipher.EncryptString(ctx, holographID, input.Institution)
	if err != nil {
		return nil, err
	}
	accountName, err := s.cipher.EncryptString(ctx, holographID, input.AccountName)
	if err != nil {
		return nil, err
	}
	notes, err := s.cipher.EncryptString(ctx, holographID, input.Notes)
	if err != nil {
		return nil, err
	}

	acct := &model.FinancialAccount{
		ID:          uuid.NewString(),
		HolographID: holographID,
		Institution: institution,
		AccountName: accountName,
		Notes:       notes,
	}
	if err := s.records.CreateFinancialAccount(acct); err != nil {
		return nil, err
	}

	s.logAccess(holographID, userID, model.SectionFinancialAccounts, acct.ID, "write", nil)
	return &FinancialAccountView{
		ID:          acct.ID,
		Institution: input.Institution,
		AccountName: input.AccountName,
		Notes:       input.Notes,
		CreatedAt:   acct.CreatedAt,
		UpdatedAt:   acct.UpdatedAt,
	}, nil
}

// GetFinancialAccount fetches and decrypts one record.
func (s *Service) GetFinancialAccount(ctx context.Context, userID, holographID, id string) (*FinancialAccountView, error) {
	if err := s.authorizeRead(holographID, userID, model.SectionFinancialAccounts); err != nil {
		return nil, err
	}

	acct, err := s.records.FetchFinancialAccount(holographID, id)
	if err != nil {
		return nil, err
	}

	view, err := s.financialAccountView(ctx, acct)
	if err != nil {
		return nil, err
	}

	s.logAccess(holographID, userID, model.SectionFinancialAccounts, id, "read", nil)
	return view, nil
}

// ListFinancialAccounts returns every record in the section, marking
// undecryptable rows instead of dropping them.
func (s *Service) ListFinancialAccounts(ctx context.Context, userID, holographID string) ([]FinancialAccountView, error) {
	if err := s.authorizeRead(holographID, userID, model.SectionFinancialAccounts); err != nil {
		return nil, err
	}

	accts, err := s.records.ListFinancialAccounts(holographID)
	if err != nil {
		return nil, err
	}

	views := make([]FinancialAccountView, 0, len(accts))
	for i := range accts {
		view, err := s.financialAccountView(ctx, &accts[i])
		if err != nil {
			if errors.Is(err, envelope.ErrDecryptionFailure) {
				views = append(views, FinancialAccountView{
					ID:            accts[i].ID,
					DecryptFailed: true,
					CreatedAt:     accts[i].CreatedAt,
					UpdatedAt:     accts[i].UpdatedAt,
				})
				continue
			}
			return nil, err
		}
		views = append(views, *view)
	}

	s.logAccess(holographID, userID, model.SectionFinancialAccounts, "", "read", nil)
	return views, nil
}

func (s *Service) financialAccountView(ctx context.Context, acct *model.FinancialAccount) (*FinancialAccountView, error) {
	institution, err := s.cipher.DecryptString(ctx, acct.HolographID, acct.Institution)
	if err != nil {
		return nil, err
	}
	accountName, err := s.cipher.DecryptString(ctx, acct.HolographID, acct.AccountName)
	if err != nil {
		return nil, err
	}
	notes, err := s.cipher.DecryptString(ctx, acct.HolographID, acct.Notes)
	if err != nil {
		return nil, err
	}
	return &FinancialAccountView{
		ID:          acct.ID,
		Institution: institution,
		AccountName: accountName,
		Notes:       notes,
		CreatedAt:   acct.CreatedAt,
		UpdatedAt:   acct.UpdatedAt,
	}, nil
}
