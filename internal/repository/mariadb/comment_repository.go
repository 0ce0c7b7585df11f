package mariadb

import (
	"context"
	"database/sql"

	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

type CommentRepository struct {
	db *sql.DB
}

// compile-time check: *CommentRepository must satisfy port.CommentRepository
var _ port.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts the comment and bumps the parent post's comment counter in
// the same transaction. A missing post surfaces as sql.ErrNoRows.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	logger.Debugf(ctx, "creating database record for comment #%s on post #%s...", comment.ID, comment.PostID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Warnf(ctx, "failed rolling back comment creation: %v", err)
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE posts SET comment_count = comment_count + 1 WHERE id = ?`,
		comment.PostID,
	)
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

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, author_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.PostID, comment.AuthorID, comment.Body, comment.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// ListPage runs the keyset page query over one post's thread.
func (r *CommentRepository) ListPage(ctx context.Context, postID db.UUID, after *cursor.Cursor, fetchSize int) ([]model.Comment, error) {
	query := `
      SELECT id, post_id, author_id, body, created_at
      FROM comments
      WHERE post_id = ?
    `
	args := []any{postID}
	if after != nil {
		query += " AND (created_at < ? OR (created_at = ? AND id < ?))"
		args = append(args, after.OrderingKey, after.OrderingKey, after.TiebreakID)
	}
	query += `
      ORDER BY created_at DESC, id DESC
      LIMIT ?
    `
	args = append(args, fetchSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Warnf(ctx, "failed closing comments page rows: %v", err)
		}
	}()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
