package video

import (
	"context"
	"fmt"

	"github.com/skundu42/doom-backend/internal/port"
)

type videoPurgerSrv struct {
	stream port.StreamClient
}

// compile-time check: *videoPurgerSrv must satisfy port.VideoPurger
var _ port.VideoPurger = (*videoPurgerSrv)(nil)

func NewVideoPurger(stream port.StreamClient) port.VideoPurger {
	return &videoPurgerSrv{stream: stream}
}

// PurgeVideo deletes the remote resource. DeleteVideo already treats
// "already deleted" as success, so retries are harmless.
func (s *videoPurgerSrv) PurgeVideo(ctx context.Context, uid string) error {
	if err := s.stream.DeleteVideo(ctx, uid); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}
