package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/validation"
)

// CreatePostRequest is the loose wire shape; the media variant is closed by
// hand after schema validation so business logic only ever sees a typed
// PostMedia.
type CreatePostRequest struct {
	MediaType string `json:"media_type" validate:"required,oneof=image video"`
	MediaURL  string `json:"media_url" validate:"omitempty,url,max=2048"`
	VideoUID  string `json:"video_uid" validate:"omitempty,max=64"`
	Caption   string `json:"caption" validate:"max=500"`
	Topic     string `json:"topic" validate:"omitempty,max=60"`
}

func CreatePostHandler(svc port.PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		media, err := closeMediaVariant(req)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		p, err := svc.CreatePost(r.Context(), port.CreatePostInput{
			AuthorID: authorID,
			Media:    media,
			Caption:  req.Caption,
			Topic:    req.Topic,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusCreated, p)
		logger.Infof(r.Context(), "✅  Successfully created post #%s", p.ID)
	}
}

// closeMediaVariant collapses the loose request into the tagged media
// variant: exactly the field matching the declared type must be set.
func closeMediaVariant(req CreatePostRequest) (port.PostMedia, error) {
	switch model.MediaType(req.MediaType) {
	case model.MediaTypeImage:
		if req.MediaURL == "" {
			return port.PostMedia{}, fmt.Errorf("media_url is required for image posts")
		}
		if req.VideoUID != "" {
			return port.PostMedia{}, fmt.Errorf("video_uid is not allowed on image posts")
		}
		return port.PostMedia{Type: model.MediaTypeImage, ImageURL: req.MediaURL}, nil
	case model.MediaTypeVideo:
		if req.VideoUID == "" {
			return port.PostMedia{}, fmt.Errorf("video_uid is required for video posts")
		}
		if req.MediaURL != "" {
			return port.PostMedia{}, fmt.Errorf("media_url is not allowed on video posts")
		}
		return port.PostMedia{Type: model.MediaTypeVideo, VideoUID: req.VideoUID}, nil
	default:
		return port.PostMedia{}, fmt.Errorf("unknown media type %q", req.MediaType)
	}
}
