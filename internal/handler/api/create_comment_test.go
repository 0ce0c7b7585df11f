package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/usecase/post"
)

type mockCommentCreator struct {
	out  *model.Comment
	err  error
	in   port.CreateCommentInput
	hits int
}

func (m *mockCommentCreator) CreateComment(ctx context.Context, in port.CreateCommentInput) (*model.Comment, error) {
	m.hits++
	m.in = in
	return m.out, m.err
}

func TestCreateCommentHandler(t *testing.T) {
	authorID := db.NewUUID()
	postID := db.NewUUID()

	newRequest := func(body string, authed bool) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/posts/x/comments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		ctx := context.WithValue(req.Context(), api_context.PostIDKey, postID)
		if authed {
			ctx = context.WithValue(ctx, api_context.AuthUserIDKey, authorID)
		}
		return req.WithContext(ctx)
	}

	t.Run("happy path", func(t *testing.T) {
		svc := &mockCommentCreator{out: &model.Comment{ID: db.NewUUID(), PostID: postID, AuthorID: authorID, Body: "nice one"}}
		h := CreateCommentHandler(svc)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(`{"body":"nice one"}`, true))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status %d, want 201 (body %s)", rec.Code, rec.Body.String())
		}
		if svc.in.PostID != postID || svc.in.AuthorID != authorID || svc.in.Body != "nice one" {
			t.Errorf("unexpected input %+v", svc.in)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := &mockCommentCreator{}
		h := CreateCommentHandler(svc)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(`{"body":"nice one"}`, false))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status %d, want 401", rec.Code)
		}
		if svc.hits != 0 {
			t.Error("service must not be called")
		}
	})

	t.Run("missing body field", func(t *testing.T) {
		svc := &mockCommentCreator{}
		h := CreateCommentHandler(svc)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(`{}`, true))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", rec.Code)
		}
		if svc.hits != 0 {
			t.Error("service must not be called")
		}
	})

	t.Run("whitespace-only body maps to 400", func(t *testing.T) {
		svc := &mockCommentCreator{err: post.ErrEmptyBody}
		h := CreateCommentHandler(svc)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(`{"body":"   "}`, true))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", rec.Code)
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		svc := &mockCommentCreator{err: post.ErrNotFound}
		h := CreateCommentHandler(svc)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(`{"body":"nice one"}`, true))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", rec.Code)
		}
	})
}
