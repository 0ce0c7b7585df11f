package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/validation"
)

type RequestUploadRequest struct {
	Filename string `json:"filename" validate:"omitempty,max=120"`
	MimeType string `json:"mime_type" validate:"omitempty,max=80"`
}

func RequestUploadHandler(svc port.UploadRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		var req RequestUploadRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
				return
			}
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		out, err := svc.RequestUpload(r.Context(), port.RequestUploadInput{
			OwnerID:  ownerID,
			Filename: req.Filename,
			MimeType: req.MimeType,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully granted direct upload %q", out.UID)
	}
}
