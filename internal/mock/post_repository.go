package mock

import (
	"bytes"
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

// PostRepo implements port.PostRepository for tests. ListPage applies real
// keyset filtering over the Posts slice, which must be preloaded in
// (created_at DESC, id DESC) order.
type PostRepo struct {
	Posts []model.Post

	CreateErr    error
	GetErr       error
	ListErr      error
	IncrementErr error

	Created         *model.Post
	GetCalled       bool
	ListCalled      int
	LastFilter      port.PostPageFilter
	LastAfter       *cursor.Cursor
	LastFetchSize   int
	IncrementCalled int
	LastCounter     port.PostCounter
	LastCounterID   db.UUID
}

func (m *PostRepo) Create(ctx context.Context, post *model.Post) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	clone := *post
	m.Created = &clone
	m.Posts = append(m.Posts, clone)
	return nil
}

func (m *PostRepo) GetByID(ctx context.Context, id db.UUID) (*model.Post, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Posts {
		if m.Posts[i].ID == id {
			clone := m.Posts[i]
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *PostRepo) ListPage(ctx context.Context, filter port.PostPageFilter, after *cursor.Cursor, fetchSize int) ([]model.Post, error) {
	m.ListCalled++
	m.LastFilter = filter
	m.LastAfter = after
	m.LastFetchSize = fetchSize
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var out []model.Post
	for _, p := range m.Posts {
		if filter.Topic != "" && p.Topic != filter.Topic {
			continue
		}
		if filter.AuthorID != nil && p.AuthorID != *filter.AuthorID {
			continue
		}
		if after != nil && !beforeCursor(p.CreatedAt, p.ID, after) {
			continue
		}
		out = append(out, p)
		if len(out) == fetchSize {
			break
		}
	}
	return out, nil
}

func (m *PostRepo) IncrementCounter(ctx context.Context, id db.UUID, counter port.PostCounter) error {
	m.IncrementCalled++
	m.LastCounterID = id
	m.LastCounter = counter
	return m.IncrementErr
}

// beforeCursor reports whether the row (t, id) sorts strictly after the
// cursor in the descending (created_at, id) order, i.e. belongs to the next
// page: t < cursor.OrderingKey OR (t == cursor.OrderingKey AND id < tiebreak).
func beforeCursor(t time.Time, id db.UUID, after *cursor.Cursor) bool {
	if t.Before(after.OrderingKey) {
		return true
	}
	if t.Equal(after.OrderingKey) {
		a := uuid.UUID(id)
		b := uuid.UUID(after.TiebreakID)
		return bytes.Compare(a[:], b[:]) < 0
	}
	return false
}
