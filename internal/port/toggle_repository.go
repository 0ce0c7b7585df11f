package port

import (
	"context"

	"github.com/skundu42/doom-backend/internal/db"
)

// ToggleKind selects which per-user toggle relation an operation targets.
type ToggleKind string

const (
	ToggleLike     ToggleKind = "like"
	ToggleBookmark ToggleKind = "bookmark"
)

// ToggleRepository owns the like/bookmark relations and keeps the
// denormalised counters on posts consistent with them. Implementations run
// the relation change and the counter adjustment in one transaction, and the
// counter adjustment only fires when the relation actually changed, so the
// counter cannot drift under concurrent toggles.
type ToggleRepository interface {
	// Set turns the toggle on or off and returns whether the relation
	// changed. Setting an already-set toggle is a no-op.
	Set(ctx context.Context, kind ToggleKind, postID db.UUID, userID db.UUID, on bool) (changed bool, err error)
	// IsSet reports the current state of the toggle.
	IsSet(ctx context.Context, kind ToggleKind, postID db.UUID, userID db.UUID) (bool, error)
}
