package port

import (
	"context"
	"errors"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
)

// ErrDuplicateUsername is returned by Create when the username unique
// constraint fires.
var ErrDuplicateUsername = errors.New("repository: username already taken")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id db.UUID) (*model.User, error)
	GetByAuthUID(ctx context.Context, authUID string) (*model.User, error)
}
