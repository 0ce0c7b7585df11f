package port

import (
	"context"

	"github.com/skundu42/doom-backend/internal/model"
)

// VideoRepository persists the local projection of provider video resources.
type VideoRepository interface {
	// Upsert inserts or replaces the row keyed by video.UID. Safe to call
	// repeatedly with the same UID.
	Upsert(ctx context.Context, video *model.Video) error
	GetByUID(ctx context.Context, uid string) (*model.Video, error)
}
