package domain

import (
	"context"
	"time"
)

// ImageRecord is one persisted upload and its metadata.
type ImageRecord struct {
	ID           int64
	Filename     string // Generated storage name inside the images directory
	OriginalName string // Name supplied by the uploader, informational only
	MedicalCase  string
	Description  string
	Tags         []string // De-duplicated and sorted
	UploadedAt   time.Time
}

// ImageRepository handles image metadata persistence.
type ImageRepository interface {
	Create(ctx context.Context, image *ImageRecord) error
	GetByID(ctx context.Context, id int64) (*ImageRecord, error)
	// List returns every record, newest id first.
	List(ctx context.Context) ([]ImageRecord, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}

// FileStore abstracts raw file byte storage.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes the named file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error
}
