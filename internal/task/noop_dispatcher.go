package task

import (
	"context"

	"github.com/skundu42/doom-backend/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueuePurgeVideo(ctx context.Context, uid string) error {
	return nil
}
