package api

import (
	"net/http"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
)

func VideoStatusHandler(svc port.VideoStatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		uid, ok := api_context.VideoUIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "video UID is required", nil)
			return
		}

		out, err := svc.GetStatus(r.Context(), uid, requesterID)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondJSON(w, http.StatusOK, out)
		logger.Debugf(r.Context(), "✅  Returned status %q for video %q", out.State, uid)
	}
}
