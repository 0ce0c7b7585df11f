package port

import (
	"context"
	"time"

	"github.com/skundu42/doom-backend/internal/db"
)

// Cache provides caching capabilities for post retrieval.
type Cache interface {
	GetPostDetails(ctx context.Context, id db.UUID) ([]byte, error)
	GetEtagPostDetails(ctx context.Context, id db.UUID) (string, error)
	SetPostDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration)
	SetEtagPostDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration)
	DeletePostDetails(ctx context.Context, id db.UUID) error
	DeleteEtagPostDetails(ctx context.Context, id db.UUID) error
}
