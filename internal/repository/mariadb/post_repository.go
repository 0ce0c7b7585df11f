package mariadb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

const postColumns = `id, author_id, media_type, media_ref, media_url, thumbnail_url, caption, topic,
        like_count, bookmark_count, view_count, comment_count, share_count, created_at, updated_at`

type PostRepository struct {
	db *sql.DB
}

// compile-time check: *PostRepository must satisfy port.PostRepository
var _ port.PostRepository = (*PostRepository)(nil)

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	logger.Debugf(ctx, "creating database record for post #%s...", post.ID)

	const query = `
      INSERT INTO posts
        (id, author_id, media_type, media_ref, media_url, thumbnail_url, caption, topic, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.AuthorID, post.MediaType,
		post.MediaRef, post.MediaURL, post.ThumbnailURL,
		post.Caption, post.Topic,
		post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id db.UUID) (*model.Post, error) {
	logger.Debugf(ctx, "fetching post #%s from the database...", id)

	query := fmt.Sprintf(`
      SELECT %s
      FROM posts
      WHERE id = ?
    `, postColumns)
	return scanPost(r.db.QueryRowContext(ctx, query, id))
}

// ListPage runs the keyset page query. The compound (created_at, id) bound is
// exclusive, so a row equal to the cursor is never returned twice.
func (r *PostRepository) ListPage(ctx context.Context, filter port.PostPageFilter, after *cursor.Cursor, fetchSize int) ([]model.Post, error) {
	where := "1=1"
	var args []any

	if filter.Topic != "" {
		where += " AND topic = ?"
		args = append(args, filter.Topic)
	}
	if filter.AuthorID != nil {
		where += " AND author_id = ?"
		args = append(args, *filter.AuthorID)
	}
	if after != nil {
		where += " AND (created_at < ? OR (created_at = ? AND id < ?))"
		args = append(args, after.OrderingKey, after.OrderingKey, after.TiebreakID)
	}
	args = append(args, fetchSize)

	query := fmt.Sprintf(`
      SELECT %s
      FROM posts
      WHERE %s
      ORDER BY created_at DESC, id DESC
      LIMIT ?
    `, postColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Warnf(ctx, "failed closing posts page rows: %v", err)
		}
	}()

	var out []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// IncrementCounter bumps a denormalised counter by one. A zero-row update
// means the post does not exist and surfaces as sql.ErrNoRows.
func (r *PostRepository) IncrementCounter(ctx context.Context, id db.UUID, counter port.PostCounter) error {
	query := fmt.Sprintf(`
      UPDATE posts
      SET %s = %s + 1
      WHERE id = ?
    `, counter, counter)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(
		&p.ID, &p.AuthorID, &p.MediaType,
		&p.MediaRef, &p.MediaURL, &p.ThumbnailURL,
		&p.Caption, &p.Topic,
		&p.LikeCount, &p.BookmarkCount, &p.ViewCount,
		&p.CommentCount, &p.ShareCount,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
