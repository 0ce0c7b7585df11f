package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	guuid "github.com/google/uuid"
	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/validation"
)

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30,alphanumunicode"`
	DisplayName string `json:"display_name" validate:"omitempty,max=80"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url,max=2048"`
}

func CreateUserHandler(svc port.UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authUID, ok := api_context.AuthUIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		u, err := svc.CreateUser(r.Context(), port.CreateUserInput{
			AuthUID:     authUID,
			Username:    req.Username,
			DisplayName: req.DisplayName,
			AvatarURL:   req.AvatarURL,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusCreated, u)
		logger.Infof(r.Context(), "✅  Successfully created user #%s as %q", u.ID, u.Username)
	}
}

func GetUserHandler(svc port.UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		parsedID, err := guuid.Parse(rawID)
		if err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("user ID %q is not a valid UUID", rawID), nil)
			return
		}

		u, err := svc.GetUser(r.Context(), db.UUID(parsedID))
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, u)
	}
}
