package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	guuid "github.com/google/uuid"
	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/port"
)

// parseLimit reads the optional ?limit= parameter. Zero means "use the
// default"; the use case clamps out-of-range values.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit %q is not a number", raw)
	}
	return limit, nil
}

func ListFeedHandler(svc port.FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		out, err := svc.ListFeed(r.Context(), port.ListPostsInput{
			Topic:       r.URL.Query().Get("topic"),
			CursorToken: r.URL.Query().Get("cursor"),
			Limit:       limit,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}

func ListUserPostsHandler(svc port.FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		parsedID, err := guuid.Parse(rawID)
		if err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("user ID %q is not a valid UUID", rawID), nil)
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		out, err := svc.ListUserPosts(r.Context(), port.ListUserPostsInput{
			AuthorID:    db.UUID(parsedID),
			CursorToken: r.URL.Query().Get("cursor"),
			Limit:       limit,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}

func ListCommentsHandler(svc port.CommentsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := api_context.PostIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "post ID is required", nil)
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}

		out, err := svc.ListComments(r.Context(), port.ListCommentsInput{
			PostID:      postID,
			CursorToken: r.URL.Query().Get("cursor"),
			Limit:       limit,
		})
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}
