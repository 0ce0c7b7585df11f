package api

import (
	"net/http"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/renderer"
)

func GetPostHandler(rnd renderer.HTTPRenderer, svc port.PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.PostIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "post ID is required", nil)
			return
		}

		raw, etag, err := rnd.RenderGetPost(r.Context(), svc, id)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Debugf(r.Context(), "✅  Returning cached post #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Debugf(r.Context(), "✅  Successfully returned details for post #%s", id)
	}
}
