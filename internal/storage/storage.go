// Package storage wires the on-disk layout of the vault: the images
// directory and the SQLite metadata store next to it.
package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/msomdec/medical-image-vault/internal/domain"
	"github.com/msomdec/medical-image-vault/internal/repository/disk"
	"github.com/msomdec/medical-image-vault/internal/repository/sqlite"
)

// Storage owns the metadata database and the image file store for one root.
type Storage struct {
	Paths Paths
	DB    *sqlite.DB
	Files *disk.FileStore
}

// Open prepares root, opens the metadata store and runs Ensure.
func Open(ctx context.Context, root string) (*Storage, error) {
	paths := NewPaths(root)

	if err := os.MkdirAll(paths.Root(), 0o755); err != nil {
		return nil, fmt.Errorf("create data root: %w", err)
	}

	db, err := sqlite.New(paths.DBPath())
	if err != nil {
		return nil, err
	}

	s := &Storage{
		Paths: paths,
		DB:    db,
		Files: disk.NewFileStore(paths.ImagesDir()),
	}
	if err := s.Ensure(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Ensure creates the data root and images directory and applies schema
// migrations. Repeated calls are no-ops.
func (s *Storage) Ensure(ctx context.Context) error {
	if err := os.MkdirAll(s.Paths.ImagesDir(), 0o755); err != nil {
		return fmt.Errorf("create images dir: %w", err)
	}
	if err := s.DB.Migrate(ctx); err != nil {
		return err
	}
	return nil
}

// Images returns the metadata repository.
func (s *Storage) Images() domain.ImageRepository {
	return s.DB.Images()
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
