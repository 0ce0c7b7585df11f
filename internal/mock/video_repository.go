package mock

import (
	"context"
	"database/sql"

	"github.com/skundu42/doom-backend/internal/model"
)

// VideoRepo implements port.VideoRepository for tests. Rows are kept in a map
// so upsert semantics behave like the real store.
type VideoRepo struct {
	Videos map[string]*model.Video

	GetErr    error
	UpsertErr error

	GetCalled    bool
	UpsertCalled int
	LastUpserted *model.Video
}

func (m *VideoRepo) Upsert(ctx context.Context, video *model.Video) error {
	m.UpsertCalled++
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	if m.Videos == nil {
		m.Videos = make(map[string]*model.Video)
	}
	clone := *video
	m.Videos[video.UID] = &clone
	m.LastUpserted = &clone
	return nil
}

func (m *VideoRepo) GetByUID(ctx context.Context, uid string) (*model.Video, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.Videos[uid]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *v
	return &clone, nil
}
