package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/usecase/post"
	"github.com/skundu42/doom-backend/internal/usecase/user"
	"github.com/skundu42/doom-backend/internal/usecase/video"
	"github.com/skundu42/doom-backend/internal/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// WriteDomainError maps typed use-case errors onto the HTTP taxonomy.
// Anything unrecognised is an internal failure.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, video.ErrNotFound),
		errors.Is(err, post.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, video.ErrForbidden):
		WriteError(w, http.StatusForbidden, "You do not own this resource", nil)
	case errors.Is(err, video.ErrNotReady):
		WriteError(w, http.StatusConflict, "Video is still processing", nil)
	case errors.Is(err, user.ErrUsernameExhausted):
		WriteError(w, http.StatusConflict, "Username is not available", nil)
	case errors.Is(err, video.ErrDurationExceeded):
		WriteError(w, http.StatusUnprocessableEntity, "Video exceeds the maximum allowed duration", nil)
	case errors.Is(err, video.ErrUpstream):
		WriteError(w, http.StatusBadGateway, "Stream provider is unavailable", err)
	case errors.Is(err, cursor.ErrInvalidCursor):
		WriteError(w, http.StatusBadRequest, "Invalid pagination cursor", nil)
	case errors.Is(err, post.ErrEmptyBody):
		WriteError(w, http.StatusBadRequest, "Comment body cannot be empty", nil)
	default:
		WriteError(w, http.StatusInternalServerError, "Something went wrong", err)
	}
}

// respondValidationErrors returns the field->constraint map produced by the
// validator as the 400 payload.
func respondValidationErrors(w http.ResponseWriter, r *http.Request, errs error) {
	errsJSON, err := validation.ErrorsToJson(errs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", err)
		return
	}
	RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
	logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}
