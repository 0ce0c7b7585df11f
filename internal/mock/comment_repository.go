package mock

import (
	"context"

	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
)

// CommentRepo implements port.CommentRepository for tests. Comments must be
// preloaded in (created_at DESC, id DESC) order.
type CommentRepo struct {
	Comments []model.Comment

	CreateErr error
	ListErr   error

	Created       *model.Comment
	ListCalled    int
	LastAfter     *cursor.Cursor
	LastFetchSize int
}

func (m *CommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	clone := *comment
	m.Created = &clone
	return nil
}

func (m *CommentRepo) ListPage(ctx context.Context, postID db.UUID, after *cursor.Cursor, fetchSize int) ([]model.Comment, error) {
	m.ListCalled++
	m.LastAfter = after
	m.LastFetchSize = fetchSize
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var out []model.Comment
	for _, c := range m.Comments {
		if c.PostID != postID {
			continue
		}
		if after != nil && !beforeCursor(c.CreatedAt, c.ID, after) {
			continue
		}
		out = append(out, c)
		if len(out) == fetchSize {
			break
		}
	}
	return out, nil
}
