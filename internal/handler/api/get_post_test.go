package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skundu42/doom-backend/internal/api_context"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/port"
	"github.com/skundu42/doom-backend/internal/usecase/post"
)

type mockRenderer struct {
	raw  []byte
	etag string
	err  error
	id   db.UUID
}

func (m *mockRenderer) RenderGetPost(ctx context.Context, svc port.PostGetter, id db.UUID) ([]byte, string, error) {
	m.id = id
	return m.raw, m.etag, m.err
}

func TestGetPostHandler(t *testing.T) {
	postID := db.NewUUID()

	newRequest := func(ifNoneMatch string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/posts/x", nil)
		if ifNoneMatch != "" {
			req.Header.Set("If-None-Match", ifNoneMatch)
		}
		return req.WithContext(context.WithValue(req.Context(), api_context.PostIDKey, postID))
	}

	t.Run("fresh fetch", func(t *testing.T) {
		rnd := &mockRenderer{raw: []byte(`{"id":"x"}`), etag: `"cafe0042"`}
		h := GetPostHandler(rnd, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(""))

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", rec.Code)
		}
		if rnd.id != postID {
			t.Errorf("got ID %s, want %s", rnd.id, postID)
		}
		if got := rec.Header().Get("ETag"); got != `"cafe0042"` {
			t.Errorf("ETag %q, want %q", got, `"cafe0042"`)
		}
		if got := rec.Header().Get("Cache-Control"); got != "public, max-age=300" {
			t.Errorf("Cache-Control %q", got)
		}
		if rec.Body.String() != `{"id":"x"}` {
			t.Errorf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("matching If-None-Match returns 304", func(t *testing.T) {
		rnd := &mockRenderer{raw: []byte(`{"id":"x"}`), etag: `"cafe0042"`}
		h := GetPostHandler(rnd, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(`"cafe0042"`))

		if rec.Code != http.StatusNotModified {
			t.Fatalf("status %d, want 304", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("body must be empty, got %q", rec.Body.String())
		}
	})

	t.Run("stale If-None-Match returns full body", func(t *testing.T) {
		rnd := &mockRenderer{raw: []byte(`{"id":"x"}`), etag: `"cafe0042"`}
		h := GetPostHandler(rnd, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(`"dead0001"`))

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200", rec.Code)
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		rnd := &mockRenderer{err: post.ErrNotFound}
		h := GetPostHandler(rnd, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(""))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", rec.Code)
		}
	})

	t.Run("missing post ID", func(t *testing.T) {
		rnd := &mockRenderer{raw: []byte(`{}`), etag: `"cafe0042"`}
		h := GetPostHandler(rnd, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/x", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", rec.Code)
		}
	})
}
