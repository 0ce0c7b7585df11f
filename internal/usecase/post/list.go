package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/playback"
	"github.com/skundu42/doom-backend/internal/port"
)

type feedListerSrv struct {
	posts    port.PostRepository
	resolver port.PlaybackResolver
}

// compile-time check: *feedListerSrv must satisfy port.FeedLister
var _ port.FeedLister = (*feedListerSrv)(nil)

func NewFeedLister(posts port.PostRepository, resolver port.PlaybackResolver) port.FeedLister {
	return &feedListerSrv{posts: posts, resolver: resolver}
}

// ListFeed returns one page of the global feed, optionally restricted to a
// topic, newest first.
func (s *feedListerSrv) ListFeed(ctx context.Context, in port.ListPostsInput) (port.PostPageOutput, error) {
	return s.page(ctx, port.PostPageFilter{Topic: in.Topic}, in.CursorToken, in.Limit)
}

// ListUserPosts returns one page of a single author's posts, newest first.
func (s *feedListerSrv) ListUserPosts(ctx context.Context, in port.ListUserPostsInput) (port.PostPageOutput, error) {
	authorID := in.AuthorID
	return s.page(ctx, port.PostPageFilter{AuthorID: &authorID}, in.CursorToken, in.Limit)
}

func (s *feedListerSrv) page(ctx context.Context, filter port.PostPageFilter, token string, limit int) (port.PostPageOutput, error) {
	limit = clampLimit(limit, FeedDefaultLimit, FeedMaxLimit)

	after, err := decodeToken(token)
	if err != nil {
		return port.PostPageOutput{}, err
	}

	// Fetch one extra row: its presence alone tells us another page exists.
	rows, err := s.posts.ListPage(ctx, filter, after, limit+1)
	if err != nil {
		return port.PostPageOutput{}, fmt.Errorf("listing posts page: %w", err)
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	out := port.PostPageOutput{Items: make([]port.PostOutput, 0, len(rows))}
	for _, p := range rows {
		out.Items = append(out.Items, s.enrich(p))
	}
	if hasMore {
		last := rows[len(rows)-1]
		tok := cursor.Encode(cursor.Cursor{OrderingKey: last.CreatedAt, TiebreakID: last.ID})
		out.NextCursor = &tok
	}

	return out, nil
}

// enrich attaches fresh signed playback URLs to video posts. Signing failures
// degrade to the durable URLs already stored on the row.
func (s *feedListerSrv) enrich(p model.Post) port.PostOutput {
	out := port.PostOutput{Post: p}
	if p.MediaType != model.MediaTypeVideo {
		return out
	}

	provided := playback.Provided{HLS: p.MediaURL}
	if p.ThumbnailURL != nil {
		provided.Thumbnail = *p.ThumbnailURL
	}
	urls, err := s.resolver.Resolve(p.MediaRef, provided)
	if err != nil {
		return out
	}
	out.Playback = &urls

	return out
}

type commentsListerSrv struct {
	posts    port.PostRepository
	comments port.CommentRepository
}

// compile-time check: *commentsListerSrv must satisfy port.CommentsLister
var _ port.CommentsLister = (*commentsListerSrv)(nil)

func NewCommentsLister(posts port.PostRepository, comments port.CommentRepository) port.CommentsLister {
	return &commentsListerSrv{posts: posts, comments: comments}
}

// ListComments returns one page of a post's comment thread, newest first.
func (s *commentsListerSrv) ListComments(ctx context.Context, in port.ListCommentsInput) (port.CommentPageOutput, error) {
	if _, err := s.posts.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.CommentPageOutput{}, ErrNotFound
		}
		return port.CommentPageOutput{}, fmt.Errorf("checking post: %w", err)
	}

	limit := clampLimit(in.Limit, CommentsDefaultLimit, CommentsMaxLimit)

	after, err := decodeToken(in.CursorToken)
	if err != nil {
		return port.CommentPageOutput{}, err
	}

	rows, err := s.comments.ListPage(ctx, in.PostID, after, limit+1)
	if err != nil {
		return port.CommentPageOutput{}, fmt.Errorf("listing comments page: %w", err)
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	out := port.CommentPageOutput{Items: rows}
	if out.Items == nil {
		out.Items = []model.Comment{}
	}
	if hasMore {
		last := rows[len(rows)-1]
		tok := cursor.Encode(cursor.Cursor{OrderingKey: last.CreatedAt, TiebreakID: last.ID})
		out.NextCursor = &tok
	}

	return out, nil
}

// decodeToken turns an optional client token into a cursor. The empty token
// means the first page.
func decodeToken(token string) (*cursor.Cursor, error) {
	if token == "" {
		return nil, nil
	}
	c, err := cursor.Decode(token)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
