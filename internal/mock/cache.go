package mock

import (
	"context"
	"time"

	"github.com/skundu42/doom-backend/internal/db"
)

// Cache implements port.Cache for tests.
type Cache struct {
	Data   []byte
	Etag   string
	GetErr error

	GetCalled     bool
	SetCalled     bool
	SetTTL        time.Duration
	DeleteCalled  bool
	LastDeletedID db.UUID
}

func (m *Cache) GetPostDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Data, nil
}

func (m *Cache) GetEtagPostDetails(ctx context.Context, id db.UUID) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.Etag, nil
}

func (m *Cache) SetPostDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
	m.SetCalled = true
	m.SetTTL = ttl
	m.Data = data
}

func (m *Cache) SetEtagPostDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration) {
	m.Etag = etag
}

func (m *Cache) DeletePostDetails(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.LastDeletedID = id
	m.Data = nil
	return nil
}

func (m *Cache) DeleteEtagPostDetails(ctx context.Context, id db.UUID) error {
	m.Etag = ""
	return nil
}
