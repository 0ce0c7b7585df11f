package mock

import (
	"context"
	"database/sql"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

// UserRepo implements port.UserRepository for tests. TakenUsernames simulates
// unique-constraint collisions on specific names.
type UserRepo struct {
	Users          map[string]*model.User
	TakenUsernames map[string]bool

	CreateErr error
	GetErr    error

	CreateCalls    int
	CreatedUsers   []model.User
	TriedUsernames []string
}

func (m *UserRepo) Create(ctx context.Context, user *model.User) error {
	m.CreateCalls++
	m.TriedUsernames = append(m.TriedUsernames, user.Username)
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.TakenUsernames[user.Username] {
		return port.ErrDuplicateUsername
	}
	if m.Users == nil {
		m.Users = make(map[string]*model.User)
	}
	clone := *user
	m.Users[user.ID.String()] = &clone
	m.CreatedUsers = append(m.CreatedUsers, clone)
	return nil
}

func (m *UserRepo) GetByID(ctx context.Context, id db.UUID) (*model.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	u, ok := m.Users[id.String()]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (m *UserRepo) GetByAuthUID(ctx context.Context, authUID string) (*model.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.Users {
		if u.AuthUID == authUID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}
