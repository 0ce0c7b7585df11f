package mariadb

import (
	"context"
	"database/sql"

	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Upsert inserts or replaces the projection row keyed by the provider UID.
// Reconciliation calls this on every poll and webhook, so repeated writes
// with the same UID must be safe.
func (r *VideoRepository) Upsert(ctx context.Context, video *model.Video) error {
	logger.Debugf(ctx, "upserting database record for video %q, at status %q...", video.UID, video.Status)

	const query = `
      INSERT INTO videos
        (uid, owner_id, status, duration_seconds, error_message, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
      ON DUPLICATE KEY UPDATE
        status           = VALUES(status),
        duration_seconds = VALUES(duration_seconds),
        error_message    = VALUES(error_message),
        updated_at       = VALUES(updated_at)
    `
	_, err := r.db.ExecContext(ctx, query,
		video.UID, video.OwnerID, video.Status,
		video.DurationSeconds, video.ErrorMessage,
		video.CreatedAt, video.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *VideoRepository) GetByUID(ctx context.Context, uid string) (*model.Video, error) {
	logger.Debugf(ctx, "fetching video %q from the database...", uid)

	const query = `
      SELECT uid, owner_id, status, duration_seconds, error_message, created_at, updated_at
      FROM videos
      WHERE uid = ?
    `
	row := r.db.QueryRowContext(ctx, query, uid)
	var video model.Video
	if err := row.Scan(
		&video.UID, &video.OwnerID, &video.Status,
		&video.DurationSeconds, &video.ErrorMessage,
		&video.CreatedAt, &video.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &video, nil
}
