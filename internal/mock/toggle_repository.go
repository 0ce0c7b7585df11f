package mock

import (
	"context"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/port"
)

// ToggleRepo implements port.ToggleRepository for tests, backed by an
// in-memory relation keyed per kind.
type ToggleRepo struct {
	SetErr   error
	IsSetErr error

	SetCalled int
	LastKind  port.ToggleKind
	LastOn    bool

	relations map[string]struct{}
}

func (m *ToggleRepo) key(kind port.ToggleKind, postID, userID db.UUID) string {
	return string(kind) + "/" + postID.String() + "/" + userID.String()
}

func (m *ToggleRepo) Set(ctx context.Context, kind port.ToggleKind, postID, userID db.UUID, on bool) (bool, error) {
	m.SetCalled++
	m.LastKind = kind
	m.LastOn = on
	if m.SetErr != nil {
		return false, m.SetErr
	}
	if m.relations == nil {
		m.relations = make(map[string]struct{})
	}

	k := m.key(kind, postID, userID)
	_, exists := m.relations[k]
	if on == exists {
		return false, nil
	}
	if on {
		m.relations[k] = struct{}{}
	} else {
		delete(m.relations, k)
	}
	return true, nil
}

func (m *ToggleRepo) IsSet(ctx context.Context, kind port.ToggleKind, postID, userID db.UUID) (bool, error) {
	if m.IsSetErr != nil {
		return false, m.IsSetErr
	}
	_, exists := m.relations[m.key(kind, postID, userID)]
	return exists, nil
}
