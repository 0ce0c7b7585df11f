package port

import (
	"context"

	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
)

// PostCounter identifies one of the denormalised counters on a post.
type PostCounter string

const (
	CounterView    PostCounter = "view_count"
	CounterShare   PostCounter = "share_count"
	CounterComment PostCounter = "comment_count"
)

// PostPageFilter restricts a keyset page query. At most one of Topic and
// AuthorID is set; both empty means the global feed.
type PostPageFilter struct {
	Topic    string
	AuthorID *db.UUID
}

// PostRepository persists posts and serves keyset pages over them.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id db.UUID) (*model.Post, error)
	// ListPage returns up to fetchSize posts strictly after the cursor in
	// (created_at DESC, id DESC) order. A nil cursor starts from the top.
	ListPage(ctx context.Context, filter PostPageFilter, after *cursor.Cursor, fetchSize int) ([]model.Post, error)
	// IncrementCounter bumps one counter by one. Monotone: there is no
	// decrement path outside the toggle repository.
	IncrementCounter(ctx context.Context, id db.UUID, counter PostCounter) error
}
