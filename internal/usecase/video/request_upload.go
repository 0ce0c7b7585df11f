package video

import (
	"context"
	"fmt"
	"time"

	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

type uploadRequesterSrv struct {
	repo   port.VideoRepository
	stream port.StreamClient
	now    func() time.Time
}

// compile-time check: *uploadRequesterSrv must satisfy port.UploadRequester
var _ port.UploadRequester = (*uploadRequesterSrv)(nil)

func NewUploadRequester(repo port.VideoRepository, stream port.StreamClient) port.UploadRequester {
	return &uploadRequesterSrv{repo: repo, stream: stream, now: time.Now}
}

// RequestUpload mints a one-time direct-upload URL with the duration cap
// embedded, then registers the pending video locally. The upload bytes never
// pass through this service.
func (s *uploadRequesterSrv) RequestUpload(ctx context.Context, in port.RequestUploadInput) (port.RequestUploadOutput, error) {
	grant, err := s.stream.CreateDirectUpload(ctx, model.MaxVideoDurationSeconds, in.OwnerID.String(), in.Filename)
	if err != nil {
		return port.RequestUploadOutput{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	now := s.now().UTC()
	v := &model.Video{
		UID:       grant.UID,
		OwnerID:   in.OwnerID,
		Status:    model.VideoStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, v); err != nil {
		return port.RequestUploadOutput{}, fmt.Errorf("registering pending video %q: %w", grant.UID, err)
	}

	return port.RequestUploadOutput{
		UID:                grant.UID,
		UploadURL:          grant.UploadURL,
		MaxDurationSeconds: model.MaxVideoDurationSeconds,
	}, nil
}
