package worker

import (
	"context"

	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/task"
)

// PurgeVideoHandler handles a purge-video task. The task is only ever
// enqueued after an inline backstop delete failed, so a failure here returns
// the error and lets asynq retry.
func PurgeVideoHandler(ctx context.Context, p task.PurgeVideoPayload, svc port.VideoPurger) error {
	if err := svc.PurgeVideo(ctx, p.UID); err != nil {
		logger.Errorf(ctx, "❌  Failed to purge video %q: %v", p.UID, err)
		return err
	}

	logger.Infof(ctx, "✅  Successfully purged video %q", p.UID)
	return nil
}
