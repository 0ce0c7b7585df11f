package image

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/skundu42/doom-backend/internal/port"
)

// uploadLinkTTL bounds how long a minted upload URL stays usable.
const uploadLinkTTL = 5 * time.Minute

type uploadLinkGeneratorSrv struct {
	strg   port.Storage
	bucket string
	now    func() time.Time
}

// compile-time check: *uploadLinkGeneratorSrv must satisfy port.ImageUploadLinkGenerator
var _ port.ImageUploadLinkGenerator = (*uploadLinkGeneratorSrv)(nil)

func NewImageUploadLinkGenerator(strg port.Storage, bucket string) port.ImageUploadLinkGenerator {
	return &uploadLinkGeneratorSrv{strg: strg, bucket: bucket, now: time.Now}
}

// GenerateImageUploadLink mints a presigned PUT URL for one image object.
// The byte transfer goes straight from the client to the bucket; the durable
// FileURL is what the client passes back when creating the post.
func (s *uploadLinkGeneratorSrv) GenerateImageUploadLink(ctx context.Context, in port.GenerateImageUploadLinkInput) (port.GenerateImageUploadLinkOutput, error) {
	objectKey := buildObjectKey(in.OwnerID.String(), in.Filename, s.now().UTC())

	url, err := s.strg.GeneratePresignedUploadURL(ctx, s.bucket, objectKey, uploadLinkTTL)
	if err != nil {
		return port.GenerateImageUploadLinkOutput{}, fmt.Errorf("generating presigned upload url: %w", err)
	}

	return port.GenerateImageUploadLinkOutput{
		UploadURL: url,
		FileURL:   s.strg.FileURL(s.bucket, objectKey),
	}, nil
}

// buildObjectKey namespaces objects per owner and salts the name with the
// mint time so repeated uploads of the same filename never collide.
func buildObjectKey(ownerID, filename string, now time.Time) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s/%s_%d%s", ownerID, base, now.UnixNano(), path.Ext(filename))
}
