package post

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/mock"
	"github.com/skundu42/doom-backend/internal/port"
)

func TestToggle_OnThenOff(t *testing.T) {
	repo := &mock.ToggleRepo{}
	cache := &mock.Cache{}
	svc := NewPostToggler(repo, cache)

	postID := db.NewUUID()
	userID := db.NewUUID()

	out, err := svc.Toggle(context.Background(), port.ToggleLike, postID, userID, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !out.On || !out.Changed {
		t.Errorf("expected on+changed, got %+v", out)
	}
	if !cache.DeleteCalled {
		t.Error("expected the post cache invalidated after a counter move")
	}

	out, err = svc.Toggle(context.Background(), port.ToggleLike, postID, userID, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.On || !out.Changed {
		t.Errorf("expected off+changed, got %+v", out)
	}
}

func TestToggle_Idempotent(t *testing.T) {
	repo := &mock.ToggleRepo{}
	svc := NewPostToggler(repo, &mock.Cache{})

	postID := db.NewUUID()
	userID := db.NewUUID()

	if _, err := svc.Toggle(context.Background(), port.ToggleBookmark, postID, userID, true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cache := &mock.Cache{}
	svc = NewPostToggler(repo, cache)
	out, err := svc.Toggle(context.Background(), port.ToggleBookmark, postID, userID, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !out.On || out.Changed {
		t.Errorf("re-liking must be a no-op, got %+v", out)
	}
	if cache.DeleteCalled {
		t.Error("no-op toggles must not invalidate the cache")
	}
}

func TestToggle_PostNotFound(t *testing.T) {
	repo := &mock.ToggleRepo{SetErr: sql.ErrNoRows}
	svc := NewPostToggler(repo, &mock.Cache{})

	_, err := svc.Toggle(context.Background(), port.ToggleLike, db.NewUUID(), db.NewUUID(), true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggle_RepoError(t *testing.T) {
	repo := &mock.ToggleRepo{SetErr: errors.New("db down")}
	svc := NewPostToggler(repo, &mock.Cache{})

	_, err := svc.Toggle(context.Background(), port.ToggleLike, db.NewUUID(), db.NewUUID(), true)
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("infrastructure failures must not read as not-found")
	}
}
