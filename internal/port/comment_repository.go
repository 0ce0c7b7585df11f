package port

import (
	"context"

	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
)

// CommentRepository persists comments. Create also bumps the parent post's
// comment counter in the same transaction.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	// ListPage returns up to fetchSize comments for a post strictly after the
	// cursor in (created_at DESC, id DESC) order.
	ListPage(ctx context.Context, postID db.UUID, after *cursor.Cursor, fetchSize int) ([]model.Comment, error)
}
