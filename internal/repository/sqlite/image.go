package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/msomdec/medical-image-vault/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var imageColumns = []string{
	"id", "filename", "original_name", "medical_case", "description", "tags_json", "uploaded_at",
}

// imageRepo implements domain.ImageRepository using SQLite.
type imageRepo struct {
	db *sql.DB
}

func (r *imageRepo) Create(ctx context.Context, image *domain.ImageRecord) error {
	tags := image.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	uploadedAt := image.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}
	uploadedAt = uploadedAt.UTC()

	query, args, err := psql.Insert("images").
		Columns("filename", "original_name", "medical_case", "description", "tags_json", "uploaded_at").
		Values(image.Filename, image.OriginalName, image.MedicalCase, image.Description,
			string(tagsJSON), uploadedAt.Format(time.RFC3339Nano)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	image.ID = id
	image.Tags = tags
	image.UploadedAt = uploadedAt
	return nil
}

func (r *imageRepo) GetByID(ctx context.Context, id int64) (*domain.ImageRecord, error) {
	query, args, err := psql.Select(imageColumns...).
		From("images").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	img, err := scanImage(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return img, nil
}

func (r *imageRepo) List(ctx context.Context) ([]domain.ImageRecord, error) {
	query, args, err := psql.Select(imageColumns...).
		From("images").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var images []domain.ImageRecord
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

func (r *imageRepo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("images").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return count, nil
}

func (r *imageRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("images").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(row rowScanner) (*domain.ImageRecord, error) {
	var (
		img        domain.ImageRecord
		tagsJSON   string
		uploadedAt string
	)
	if err := row.Scan(&img.ID, &img.Filename, &img.OriginalName, &img.MedicalCase,
		&img.Description, &tagsJSON, &uploadedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &img.Tags); err != nil {
		return nil, fmt.Errorf("decode tags of image %d: %w", img.ID, err)
	}
	if img.Tags == nil {
		img.Tags = []string{}
	}

	t, err := time.Parse(time.RFC3339Nano, uploadedAt)
	if err != nil {
		return nil, fmt.Errorf("parse uploaded_at of image %d: %w", img.ID, err)
	}
	img.UploadedAt = t.UTC()

	return &img, nil
}
