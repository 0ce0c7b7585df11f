package api_context

import (
	"context"

	"github.com/skundu42/doom-backend/internal/db"
)

type ctxKey string

const (
	PostIDKey     ctxKey = "postID"
	VideoUIDKey   ctxKey = "videoUID"
	AuthUserIDKey ctxKey = "authUserID"
	AuthUIDKey    ctxKey = "authUID"
)

func PostIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(PostIDKey).(db.UUID)
	return id, ok
}

func VideoUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(VideoUIDKey).(string)
	return uid, ok
}

func AuthUserIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(db.UUID)
	return id, ok
}

// AuthUIDFromContext returns the identity provider's subject claim. Present
// on every authenticated request, even before a profile exists.
func AuthUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(AuthUIDKey).(string)
	return uid, ok
}
