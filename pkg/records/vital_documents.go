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

// VitalDocumentInput carries the plaintext attributes of a vital
// document record.
type VitalDocumentInput struct {
	Name  string
	Notes string
}

// VitalDocumentView is a decrypted vital document. DecryptFailed marks
// a record whose ciphertext could not be recovered; its encrypted
// fields are left empty rather than guessed at.
type VitalDocumentView struct {
	ID            string
	Name          string
	Notes         string
	HasFile       bool
	DecryptFailed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateVitalDocument encrypts and stores a new vital document record.
func (s *Service) CreateVitalDocument(ctx context.Context, userID, holographID string, input VitalDocumentInput) (*VitalDocumentView, error) {
	if err := s.authorizeWrite(holographID, userID, model.SectionVitalDocuments, "write"); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("document name is required: %w", access.ErrValidation)
	}

	name, err := s.cipher.EncryptString(ctx, holographID, input.Name)
	if err != nil {
		return nil, err
	}
	notes, err := s.cipher.EncryptString(ctx, holographID, input.Notes)
	if err != nil {
		return nil, err
	}

	doc := &model.VitalDocument{
		ID:          uuid.NewString(),
		HolographID: holographID,
		Name:        name,
		Notes:       notes,
	}
	if err := s.records.CreateVitalDocument(doc); err != nil {
		return nil, err
	}

	s.logAccess(holographID, userID, model.SectionVitalDocuments, doc.ID, "write", nil)
	return &VitalDocumentView{
		ID:        doc.ID,
		Name:      input.Name,
		Notes:     input.Notes,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// GetVitalDocument fetches and decrypts one record. A record whose
// fields cannot be decrypted is an error here, unlike in listings.
func (s *Service) GetVitalDocument(ctx context.Context, userID, holographID, id string) (*VitalDocumentView, error) {
	if err := s.authorizeRead(holographID, userID, model.SectionVitalDocuments); err != nil {
		return nil, err
	}

	doc, err := s.records.FetchVitalDocument(holographID, id)
	if err != nil {
		return nil, err
	}

	view, err := s.vitalDocumentView(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.logAccess(holographID, userID, model.SectionVitalDocuments, id, "read", nil)
	return view, nil
}

// ListVitalDocuments returns every record in the section. Records that
// fail decryption are included with DecryptFailed set so one corrupt
// row does not hide the rest of the section.
func (s *Service) ListVitalDocuments(ctx context.Context, userID, holographID string) ([]VitalDocumentView, error) {
	if err := s.authorizeRead(holographID, userID, model.SectionVitalDocuments); err != nil {
		return nil, err
	}

	docs, err := s.records.ListVitalDocuments(holographID)
	if err != nil {
		return nil, err
	}

	views := make([]VitalDocumentView, 0, len(docs))
	for i := range docs {
		view, err := s.vitalDocumentView(ctx, &docs[i])
		if err != nil {
			if errors.Is(err, envelope.ErrDecryptionFailure) {
				views = append(views, VitalDocumentView{
					ID:            docs[i].ID,
					HasFile:       docs[i].FilePath != nil,
					DecryptFailed: true,
					CreatedAt:     docs[i].CreatedAt,
					UpdatedAt:     docs[i].UpdatedAt,
				})
				continue
			}
			return nil, err
		}
		views = append(views, *view)
	}

	s.logAccess(holographID, userID, model.SectionVitalDocuments, "", "read", nil)
	return views, nil
}

// DeleteVitalDocument removes a record and its attached file, if any.
// The file goes first so a failure never strands an orphaned blob
// behind a deleted row.
func (s *Service) DeleteVitalDocument(ctx context.Context, userID, holographID, id string) error {
	if err := s.authorizeWrite(holographID, userID, model.SectionVitalDocuments, "delete"); err != nil {
		return err
	}

	doc, err := s.records.FetchVitalDocument(holographID, id)
	if err != nil {
		return err
	}

	if doc.FilePath != nil {
		if err := s.deleteObject(ctx, *doc.FilePath); err != nil {
			return err
		}
	}

	if err := s.records.DeleteVitalDocument(holographID, id); err != nil {
		return err
	}

	s.logAccess(holographID, userID, model.SectionVitalDocuments, id, "delete", nil)
	return nil
}

func (s *Service) vitalDocumentView(ctx context.Context, doc *model.VitalDocument) (*VitalDocumentView, error) {
	name, err := s.cipher.DecryptString(ctx, doc.HolographID, doc.Name)
	if err != nil {
		return nil, err
	}
	notes, err := s.cipher.DecryptString(ctx, doc.HolographID, doc.Notes)
	if err != nil {
		return nil, err
	}
	return &VitalDocumentView{
		ID:        doc.ID,
		Name:      name,
		Notes:     notes,
		HasFile:   doc.FilePath != nil,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
