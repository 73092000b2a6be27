package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/msomdec/medical-image-vault/internal/domain"
)

// Upload is one file plus the metadata entered alongside it.
type Upload struct {
	Data         []byte
	ContentType  string // Declared MIME type; empty when unknown
	OriginalName string
	MedicalCase  string
	Description  string
	Tags         []string
}

// ImageService stores uploads and their metadata and answers queries over them.
type ImageService struct {
	images domain.ImageRepository
	files  domain.FileStore
	ensure domain.Ensurer
}

// NewImageService creates a new ImageService. ensure may be nil when the
// backing storage is prepared elsewhere.
func NewImageService(images domain.ImageRepository, files domain.FileStore, ensure domain.Ensurer) *ImageService {
	return &ImageService{images: images, files: files, ensure: ensure}
}

func (s *ImageService) prepare(ctx context.Context) error {
	if s.ensure == nil {
		return nil
	}
	if err := s.ensure.Ensure(ctx); err != nil {
		return fmt.Errorf("ensure storage: %w", err)
	}
	return nil
}

// Save writes the upload's bytes under a fresh random name, then records its
// metadata, and returns the new record ID. Case and description are trimmed
// and tags are de-duplicated and sorted.
func (s *ImageService) Save(ctx context.Context, up Upload) (int64, error) {
	if err := s.prepare(ctx); err != nil {
		return 0, err
	}

	name, err := generateFilename(ResolveExtension(up.ContentType, up.OriginalName))
	if err != nil {
		return 0, fmt.Errorf("generate filename: %w", err)
	}

	if err := s.files.Save(ctx, name, up.Data); err != nil {
		return 0, fmt.Errorf("save file: %w", err)
	}

	image := &domain.ImageRecord{
		Filename:     name,
		OriginalName: up.OriginalName,
		MedicalCase:  strings.TrimSpace(up.MedicalCase),
		Description:  strings.TrimSpace(up.Description),
		Tags:         normalizeTags(up.Tags),
	}

	if err := s.images.Create(ctx, image); err != nil {
		// Best-effort cleanup of the stored file.
		if delErr := s.files.Delete(ctx, name); delErr != nil {
			orphanFilesTotal.Inc()
		}
		return 0, fmt.Errorf("create image record: %w", err)
	}

	uploadsTotal.Inc()
	uploadBytesTotal.Add(float64(len(up.Data)))
	return image.ID, nil
}

// Count returns the number of stored images.
func (s *ImageService) Count(ctx context.Context) (int, error) {
	if err := s.prepare(ctx); err != nil {
		return 0, err
	}
	return s.images.Count(ctx)
}

// List returns every stored image, newest first.
func (s *ImageService) List(ctx context.Context) ([]domain.ImageRecord, error) {
	if err := s.prepare(ctx); err != nil {
		return nil, err
	}
	return s.images.List(ctx)
}

// ReadBytes returns the raw bytes of a stored file.
func (s *ImageService) ReadBytes(ctx context.Context, filename string) ([]byte, error) {
	data, err := s.files.Get(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("read file %q: %w", filename, err)
	}
	return data, nil
}

// Delete removes the image record and then its file. It reports false when no
// record has that ID. The record deletion is authoritative: a file that cannot
// be removed afterwards is logged and left behind.
func (s *ImageService) Delete(ctx context.Context, id int64) (bool, error) {
	if err := s.prepare(ctx); err != nil {
		return false, err
	}

	image, err := s.images.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			deletesTotal.WithLabelValues("missing").Inc()
			return false, nil
		}
		return false, fmt.Errorf("get image: %w", err)
	}

	if err := s.images.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			deletesTotal.WithLabelValues("missing").Inc()
			return false, nil
		}
		return false, fmt.Errorf("delete image record: %w", err)
	}
	deletesTotal.WithLabelValues("deleted").Inc()

	if err := s.files.Delete(ctx, image.Filename); err != nil {
		orphanFilesTotal.Inc()
		slog.Warn("remove image file", "id", id, "filename", image.Filename, "error", err)
	}

	return true, nil
}

func normalizeTags(tags []string) []string {
	out := slices.Clone(tags)
	if out == nil {
		return []string{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func generateFilename(ext string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(id[:]) + ext, nil
}
