package port

import (
	"context"
	"time"
)

// Storage mints presigned upload URLs for image files. Bytes go straight
// from the client to the bucket.
type Storage interface {
	InitBucket(bucket string) error
	GeneratePresignedUploadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error)
	FileURL(bucket, fileKey string) string
}
