package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
)

type togglerSrv struct {
	toggles port.ToggleRepository
	cache   port.Cache
}

// compile-time check: *togglerSrv must satisfy port.PostToggler
var _ port.PostToggler = (*togglerSrv)(nil)

func NewPostToggler(toggles port.ToggleRepository, cache port.Cache) port.PostToggler {
	return &togglerSrv{toggles: toggles, cache: cache}
}

// Toggle sets a like or bookmark to the requested state. It is idempotent:
// re-applying the current state changes nothing and the counter only moves
// when the relation does.
func (s *togglerSrv) Toggle(ctx context.Context, kind port.ToggleKind, postID, userID db.UUID, on bool) (port.ToggleOutput, error) {
	changed, err := s.toggles.Set(ctx, kind, postID, userID, on)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.ToggleOutput{}, ErrNotFound
		}
		return port.ToggleOutput{}, fmt.Errorf("setting %s: %w", kind, err)
	}

	if changed {
		s.invalidate(ctx, postID)
	}

	return port.ToggleOutput{On: on, Changed: changed}, nil
}

// invalidate drops the cached post details after a counter moved. Losing the
// cache entry is never fatal; the next read repopulates it.
func (s *togglerSrv) invalidate(ctx context.Context, postID db.UUID) {
	if err := s.cache.DeletePostDetails(ctx, postID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for post #%s: %v", postID, err)
	}
	if err := s.cache.DeleteEtagPostDetails(ctx, postID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for post #%s: %v", postID, err)
	}
}
