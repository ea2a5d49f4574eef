package repositories

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rohits-web03/resumehub/internal/config"
)

// FileStore persists uploaded resumes and returns where each one ended up.
type FileStore interface {
	Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error)
}

// OpenFileStore builds the store selected by cfg.StorageDriver.
func OpenFileStore(cfg config.Config) (FileStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDisk:
		return NewDiskFileStore(cfg.UploadDir)
	case config.StorageR2:
		return NewR2FileStore(cfg.R2), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

type DiskFileStore struct {
	dir string
}

func NewDiskFileStore(dir string) (*DiskFileStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskFileStore{dir: dir}, nil
}

func (s *DiskFileStore) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) (string, error) {
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		_ = os.Remove(dstPath)
		return "", err
	}
	return dstPath, nil
}
