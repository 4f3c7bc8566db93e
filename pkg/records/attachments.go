package records

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// AttachFile uploads a file and binds it to a vital document record.
// An existing attachment is replaced: the new file is stored and the
// pointer swapped before the old file is removed.
func (s *Service) AttachFile(ctx context.Context, userID, holographID, id, originalName string, content []byte) error {
	if err := s.authorizeWrite(holographID, userID, model.SectionVitalDocuments, "write"); err != nil {
		return err
	}
	if originalName == "" {
		return fmt.Errorf("file name is required: %w", access.ErrValidation)
	}

	doc, err := s.records.FetchVitalDocument(holographID, id)
	if err != nil {
		return err
	}

	filePath := s.attachmentPath(holographID, model.SectionVitalDocuments, originalName)
	if err := s.files.Put(ctx, filePath, content); err != nil {
		return err
	}

	if err := s.records.SetVitalDocumentFile(holographID, id, &filePath); err != nil {
		// The row still points at the old file; drop the upload.
		_ = s.files.Delete(ctx, filePath)
		return err
	}

	if doc.FilePath != nil && *doc.FilePath != filePath {
		if err := s.deleteObject(ctx, *doc.FilePath); err != nil {
			return err
		}
	}

	s.logAccess(holographID, userID, model.SectionVitalDocuments, id, "write", nil)
	return nil
}

// DetachFile removes a record's attached file. The stored object is
// deleted before the database pointer is cleared, so the pointer can
// never dangle; if the delete fails the pointer stays and the detach
// can be retried.
func (s *Service) DetachFile(ctx context.Context, userID, holographID, id string) error {
	if err := s.authorizeWrite(holographID, userID, model.SectionVitalDocuments, "write"); err != nil {
		return err
	}

	doc, err := s.records.FetchVitalDocument(holographID, id)
	if err != nil {
		return err
	}
	if doc.FilePath == nil {
		return fmt.Errorf("record %q has no attached file: %w", id, store.ErrNotFound)
	}

	if err := s.deleteObject(ctx, *doc.FilePath); err != nil {
		return err
	}

	if err := s.records.SetVitalDocumentFile(holographID, id, nil); err != nil {
		return err
	}

	s.logAccess(holographID, userID, model.SectionVitalDocuments, id, "delete", nil)
	return nil
}

// DownloadFile returns the contents of a record's attached file.
func (s *Service) DownloadFile(ctx context.Context, userID, holographID, id string) ([]byte, error) {
	if err := s.authorizeRead(holographID, userID, model.SectionVitalDocuments); err != nil {
		return nil, err
	}

	doc, err := s.records.FetchVitalDocument(holographID, id)
	if err != nil {
		return nil, err
	}
	if doc.FilePath == nil {
		return nil, fmt.Errorf("record %q has no attached file: %w", id, store.ErrNotFound)
	}

	content, err := s.files.Get(ctx, *doc.FilePath)
	if err != nil {
		return nil, err
	}

	s.logAccess(holographID, userID, model.SectionVitalDocuments, id, "read", nil)
	return content, nil
}

// attachmentPath builds the storage key {holographID}/{section}/{ts}-{name}.
// The original name is flattened to its base so uploads cannot escape
// the holograph's prefix.
func (s *Service) attachmentPath(holographID, sectionID, originalName string) string {
	name := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	return fmt.Sprintf("%s/%s/%d-%s", holographID, sectionID, s.now().UnixNano(), name)
}
