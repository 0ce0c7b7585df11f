package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

type commentCreatorSrv struct {
	comments port.CommentRepository
	cache    port.Cache
	newUUID  port.UUIDGen
	now      func() time.Time
}

// compile-time check: *commentCreatorSrv must satisfy port.CommentCreator
var _ port.CommentCreator = (*commentCreatorSrv)(nil)

func NewCommentCreator(comments port.CommentRepository, cache port.Cache, newUUID port.UUIDGen) port.CommentCreator {
	return &commentCreatorSrv{comments: comments, cache: cache, newUUID: newUUID, now: time.Now}
}

// CreateComment adds a comment to a post. The repository bumps the post's
// comment counter in the same transaction as the insert.
func (s *commentCreatorSrv) CreateComment(ctx context.Context, in port.CreateCommentInput) (*model.Comment, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	c := &model.Comment{
		ID:        s.newUUID(),
		PostID:    in.PostID,
		AuthorID:  in.AuthorID,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	if err := s.cache.DeletePostDetails(ctx, in.PostID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for post #%s: %v", in.PostID, err)
	}
	if err := s.cache.DeleteEtagPostDetails(ctx, in.PostID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for post #%s: %v", in.PostID, err)
	}

	return c, nil
}
