package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

type postGetterSrv struct {
	posts port.PostRepository
}

// compile-time check: *postGetterSrv must satisfy port.PostGetter
var _ port.PostGetter = (*postGetterSrv)(nil)

func NewPostGetter(posts port.PostRepository) port.PostGetter {
	return &postGetterSrv{posts: posts}
}

func (s *postGetterSrv) GetPost(ctx context.Context, id db.UUID) (*model.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return p, nil
}
