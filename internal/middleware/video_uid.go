package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/handler/api"
)

// maxUIDLength bounds provider UIDs; Cloudflare Stream UIDs are 32 hex chars
// but the format is not contractual, so only length is checked.
const maxUIDLength = 64

func WithVideoUID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := chi.URLParam(r, "uid")
			if uid == "" {
				api.WriteError(w, http.StatusBadRequest, "video UID is required", nil)
				return
			}
			if len(uid) > maxUIDLength {
				api.WriteError(w, http.StatusBadRequest, "video UID is too long", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.VideoUIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
