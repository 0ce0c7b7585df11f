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

type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,max=1000"`
}

func CreateCommentHandler(svc port.CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		postID, ok := api_context.PostIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "post ID is required", nil)
			return
		}

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		c, err := svc.CreateComment(r.Context(), port.CreateCommentInput{
			PostID:   postID,
			AuthorID: authorID,
			Body:     req.Body,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusCreated, c)
		logger.Infof(r.Context(), "✅  Successfully created comment #%s on post #%s", c.ID, postID)
	}
}
