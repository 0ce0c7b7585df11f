package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
)

// ToggleRequest carries the caller's intent. Omitting the body means "turn
// on", so a bare POST likes/bookmarks the post.
type ToggleRequest struct {
	On *bool `json:"on"`
}

func ToggleHandler(svc port.PostToggler, kind port.ToggleKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		postID, ok := api_context.PostIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "post ID is required", nil)
			return
		}

		on := true
		if r.ContentLength > 0 {
			var req ToggleRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
				return
			}
			if req.On != nil {
				on = *req.On
			}
		}

		out, err := svc.Toggle(r.Context(), kind, postID, userID, on)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Debugf(r.Context(), "✅  Set %s=%t on post #%s", kind, out.On, postID)
	}
}
