package objectstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Ensure FsStore implements Store
var _ Store = (*FsStore)(nil)

// FsStore implements Store on top of an afero filesystem. In production
// the filesystem is an OsFs rooted at the configured storage directory
// (typically a mounted bucket); tests use a MemMapFs.
type FsStore struct {
	fs afero.Fs
}

// NewFsStore creates an FsStore over fs.
func NewFsStore(fs afero.Fs) *FsStore {
	return &FsStore{fs: fs}
}

// NewOsStore creates an FsStore rooted at dir on the local filesystem.
func NewOsStore(dir string) *FsStore {
	return &FsStore{fs: afero.NewBasePathFs(afero.NewOsFs(), dir)}
}

func (s *FsStore) Put(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir for %q: %w", path, err)
	}

	return afero.WriteFile(s.fs, path, data, 0o600)
}

func (s *FsStore) PutIfAbsent(ctx context.Context, path string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return false, fmt.Errorf("mkdir for %q: %w", path, err)
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, err
	}

	return true, f.Close()
}

func (s *FsStore) Get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
		}
		return nil, err
	}

	return data, nil
}

func (s *FsStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
