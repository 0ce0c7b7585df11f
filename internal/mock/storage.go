package mock

import (
	"context"
	"time"
)

// Storage implements port.Storage for tests.
type Storage struct {
	UploadURL string
	URLErr    error

	InitErr error

	GenerateUploadLinkCalled bool
	Bucket                   string
	ObjectKey                string
	TTL                      time.Duration
}

func (m *Storage) InitBucket(bucket string) error {
	return m.InitErr
}

func (m *Storage) GeneratePresignedUploadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateUploadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.URLErr != nil {
		return "", m.URLErr
	}
	if m.UploadURL != "" {
		return m.UploadURL, nil
	}
	return "https://example.com/upload", nil
}

func (m *Storage) FileURL(bucket, fileKey string) string {
	return "https://cdn.example.com/" + bucket + "/" + fileKey
}
