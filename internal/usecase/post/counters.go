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

type counterSrv struct {
	posts port.PostRepository
	cache port.Cache
}

// compile-time check: *counterSrv must satisfy port.PostCounterBumper
var _ port.PostCounterBumper = (*counterSrv)(nil)

func NewPostCounterBumper(posts port.PostRepository, cache port.Cache) port.PostCounterBumper {
	return &counterSrv{posts: posts, cache: cache}
}

func (s *counterSrv) RecordView(ctx context.Context, postID db.UUID) error {
	return s.bump(ctx, postID, port.CounterView)
}

func (s *counterSrv) RecordShare(ctx context.Context, postID db.UUID) error {
	return s.bump(ctx, postID, port.CounterShare)
}

func (s *counterSrv) bump(ctx context.Context, postID db.UUID, counter port.PostCounter) error {
	if err := s.posts.IncrementCounter(ctx, postID, counter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("incrementing %s: %w", counter, err)
	}

	if err := s.cache.DeletePostDetails(ctx, postID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for post #%s: %v", postID, err)
	}
	if err := s.cache.DeleteEtagPostDetails(ctx, postID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for post #%s: %v", postID, err)
	}

	return nil
}
