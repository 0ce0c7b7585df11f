package post

import (
	"context"
	"fmt"
	"time"

	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/playback"
	"github.com/skundu42/doom-backend/internal/port"
)

type postCreatorSrv struct {
	posts    port.PostRepository
	verifier port.VideoAttachmentVerifier
	resolver port.PlaybackResolver
	newUUID  port.UUIDGen
	now      func() time.Time
}

// compile-time check: *postCreatorSrv must satisfy port.PostCreator
var _ port.PostCreator = (*postCreatorSrv)(nil)

func NewPostCreator(posts port.PostRepository, verifier port.VideoAttachmentVerifier, resolver port.PlaybackResolver, newUUID port.UUIDGen) port.PostCreator {
	return &postCreatorSrv{posts: posts, verifier: verifier, resolver: resolver, newUUID: newUUID, now: time.Now}
}

// CreatePost persists a new post. For video media it re-verifies ownership
// and readiness synchronously, then stores durable (unsigned) playback URLs
// on the row; fresh signed tokens are attached later at read time.
func (s *postCreatorSrv) CreatePost(ctx context.Context, in port.CreatePostInput) (*model.Post, error) {
	now := s.now().UTC()
	p := &model.Post{
		ID:        s.newUUID(),
		AuthorID:  in.AuthorID,
		MediaType: in.Media.Type,
		Caption:   in.Caption,
		Topic:     in.Topic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch in.Media.Type {
	case model.MediaTypeImage:
		p.MediaRef = in.Media.ImageURL
		p.MediaURL = in.Media.ImageURL
	case model.MediaTypeVideo:
		if _, err := s.verifier.VerifyAttachment(ctx, in.Media.VideoUID, in.AuthorID); err != nil {
			return nil, err
		}
		urls := s.resolver.ResolveUnsigned(in.Media.VideoUID, playback.Provided{})
		p.MediaRef = in.Media.VideoUID
		p.MediaURL = urls.HLS
		p.ThumbnailURL = &urls.Thumbnail
	default:
		return nil, fmt.Errorf("post: unknown media type %q", in.Media.Type)
	}

	if err := s.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return p, nil
}
