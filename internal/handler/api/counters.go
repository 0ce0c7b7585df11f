package api

import (
	"net/http"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/port"
)

type counterAck struct {
	Recorded bool `json:"recorded"`
}

func RecordViewHandler(svc port.PostCounterBumper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := api_context.PostIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "post ID is required", nil)
			return
		}

		if err := svc.RecordView(r.Context(), postID); err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, counterAck{Recorded: true})
	}
}

func RecordShareHandler(svc port.PostCounterBumper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := api_context.PostIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "post ID is required", nil)
			return
		}

		if err := svc.RecordShare(r.Context(), postID); err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, counterAck{Recorded: true})
	}
}
