package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skundu42/doom-backend/internal/port"
)

func TestCreateDirectUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s, want POST", r.Method)
		}
		if r.URL.Path != "/accounts/acc123/stream/direct_upload" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("authorization header: got %q", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body["maxDurationSeconds"] != float64(180) {
			t.Errorf("maxDurationSeconds: got %v, want 180", body["maxDurationSeconds"])
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"result":  map[string]string{"uid": "abc123", "uploadURL": "https://upload.example.com/abc123"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "acc123", "tok123")
	out, err := c.CreateDirectUpload(context.Background(), 180, "user-1", "clip.mp4")
	if err != nil {
		t.Fatalf("CreateDirectUpload: %v", err)
	}
	if out.UID != "abc123" {
		t.Errorf("uid: got %q, want %q", out.UID, "abc123")
	}
	if out.UploadURL != "https://upload.example.com/abc123" {
		t.Errorf("uploadURL: got %q", out.UploadURL)
	}
}

func TestGetVideo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/acc123/stream/abc123" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"result": map[string]any{
				"uid":           "abc123",
				"readyToStream": true,
				"duration":      45.4,
				"status":        map[string]string{"state": "ready"},
				"playback": map[string]string{
					"hls":  "https://cdn.example.com/abc123/manifest/video.m3u8",
					"dash": "https://cdn.example.com/abc123/manifest/video.mpd",
				},
				"thumbnail": "https://cdn.example.com/abc123/thumbnails/thumbnail.jpg",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "acc123", "tok123")
	state, err := c.GetVideo(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if !state.ReadyToStream {
		t.Error("expected ReadyToStream true")
	}
	if state.DurationSeconds != 45.4 {
		t.Errorf("duration: got %v, want 45.4", state.DurationSeconds)
	}
	if state.State != "ready" {
		t.Errorf("state: got %q, want %q", state.State, "ready")
	}
	if state.HLS == "" || state.Dash == "" || state.Thumbnail == "" {
		t.Error("expected playback URLs to be populated")
	}
}

func TestGetVideo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "acc123", "tok123")
	_, err := c.GetVideo(context.Background(), "missing")
	if !errors.Is(err, port.ErrVideoNotFoundRemote) {
		t.Errorf("expected ErrVideoNotFoundRemote, got %v", err)
	}
}

func TestDeleteVideo_ToleratesAlreadyDeleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method: got %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "acc123", "tok123")
	if err := c.DeleteVideo(context.Background(), "gone"); err != nil {
		t.Errorf("expected nil for already-deleted video, got %v", err)
	}
}

func TestDo_ProviderFailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"errors":  []map[string]any{{"code": 10005, "message": "video not ready"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "acc123", "tok123")
	_, err := c.GetVideo(context.Background(), "abc123")
	if err == nil {
		t.Fatal("expected error for failure envelope, got nil")
	}
}

func TestDo_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "acc123", "tok123")
	_, err := c.GetVideo(context.Background(), "abc123")
	if err == nil {
		t.Fatal("expected error for 502, got nil")
	}
}
