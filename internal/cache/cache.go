package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetPostDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, detailsKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *Cache) GetEtagPostDetails(ctx context.Context, id db.UUID) (string, error) {
	val, err := c.client.Get(ctx, etagKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Cache) SetPostDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, detailsKey(id), data, ttl).Err(); err != nil {
		logger.Warnf(ctx, "failed caching details for post #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagPostDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, etagKey(id), etag, ttl).Err(); err != nil {
		logger.Warnf(ctx, "failed caching etag for post #%s: %v", id, err)
	}
}

func (c *Cache) DeletePostDetails(ctx context.Context, id db.UUID) error {
	return c.client.Del(ctx, detailsKey(id)).Err()
}

func (c *Cache) DeleteEtagPostDetails(ctx context.Context, id db.UUID) error {
	return c.client.Del(ctx, etagKey(id)).Err()
}

func detailsKey(id db.UUID) string {
	return "post:" + id.String()
}

func etagKey(id db.UUID) string {
	return "post_etag:" + id.String()
}
