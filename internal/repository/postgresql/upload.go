package postgresql

import (
	"context"
	"fmt"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/database"
)

type uploadRepository struct {
	db *database.DB
}

// Create implements attendance.UploadRepository.
func (r *uploadRepository) Create(ctx context.Context, upload attendance.Upload) (attendance.Upload, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO uploads (file_name, record_count, status)
		VALUES ($1, $2, $3)
		RETURNING id, file_name, record_count, status, uploaded_at
	`

	var created attendance.Upload
	err := q.QueryRow(ctx, query,
		upload.FileName,
		upload.RecordCount,
		upload.Status,
	).Scan(
		&created.ID,
		&created.FileName,
		&created.RecordCount,
		&created.Status,
		&created.UploadedAt,
	)
	if err != nil {
		return attendance.Upload{}, fmt.Errorf("failed to create upload: %w", err)
	}

	return created, nil
}

// DeleteByFileName implements attendance.UploadRepository.
func (r *uploadRepository) DeleteByFileName(ctx context.Context, fileName string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM uploads WHERE file_name = $1`, fileName); err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return nil
}

func NewUploadRepository(db *database.DB) attendance.UploadRepository {
	return &uploadRepository{db: db}
}
