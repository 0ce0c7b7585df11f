package cache

import (
	"context"
	"time"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetPostDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagPostDetails(ctx context.Context, id db.UUID) (string, error) {
	return "", nil
}

func (n *NoopCache) SetPostDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagPostDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeletePostDetails(ctx context.Context, id db.UUID) error { return nil }

func (n *NoopCache) DeleteEtagPostDetails(ctx context.Context, id db.UUID) error {
	return nil
}
