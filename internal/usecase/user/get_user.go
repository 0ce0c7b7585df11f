package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

type userGetterSrv struct {
	users port.UserRepository
}

// compile-time check: *userGetterSrv must satisfy port.UserGetter
var _ port.UserGetter = (*userGetterSrv)(nil)

func NewUserGetter(users port.UserRepository) port.UserGetter {
	return &userGetterSrv{users: users}
}

func (s *userGetterSrv) GetUser(ctx context.Context, id db.UUID) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}
