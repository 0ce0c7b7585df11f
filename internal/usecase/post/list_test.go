package post

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/mock"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/playback"
	"github.com/skundu42/doom-backend/internal/port"
)

// seedPosts builds n image posts in strict (created_at DESC, id DESC) order,
// with pairs of rows sharing a timestamp so the tiebreak actually matters.
func seedPosts(n int) []model.Post {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	author := db.NewUUID()

	out := make([]model.Post, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Post{
			ID:        db.NewUUID(),
			AuthorID:  author,
			MediaType: model.MediaTypeImage,
			MediaURL:  "https://cdn.example.com/pic.jpg",
			CreatedAt: base.Add(-time.Duration(i/2) * time.Minute),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		a := uuid.UUID(out[i].ID)
		b := uuid.UUID(out[j].ID)
		return bytes.Compare(a[:], b[:]) > 0
	})
	return out
}

func TestListFeed_FirstPage(t *testing.T) {
	repo := &mock.PostRepo{Posts: seedPosts(7)}
	svc := NewFeedLister(repo, &mock.Resolver{})

	out, err := svc.ListFeed(context.Background(), port.ListPostsInput{Limit: 5})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(out.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(out.Items))
	}
	if out.NextCursor == nil {
		t.Fatal("expected a next cursor with rows remaining")
	}
	if repo.LastFetchSize != 6 {
		t.Errorf("expected the repo probed with limit+1=6, got %d", repo.LastFetchSize)
	}
	if repo.LastAfter != nil {
		t.Error("first page must query with a nil cursor")
	}

	// the token must point at the last returned row
	c, err := cursor.Decode(*out.NextCursor)
	if err != nil {
		t.Fatalf("next cursor does not decode: %v", err)
	}
	last := out.Items[len(out.Items)-1]
	if c.TiebreakID != last.ID || !c.OrderingKey.Equal(last.CreatedAt) {
		t.Error("next cursor does not mark the last returned row")
	}
}

func TestListFeed_LastPageHasNoCursor(t *testing.T) {
	repo := &mock.PostRepo{Posts: seedPosts(4)}
	svc := NewFeedLister(repo, &mock.Resolver{})

	out, err := svc.ListFeed(context.Background(), port.ListPostsInput{Limit: 10})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Items) != 4 {
		t.Fatalf("expected all 4 items, got %d", len(out.Items))
	}
	if out.NextCursor != nil {
		t.Error("expected no next cursor on the final page")
	}
}

// Walking the feed page by page must visit every row exactly once, ties
// included.
func TestListFeed_PaginationIsTotal(t *testing.T) {
	const total = 23
	repo := &mock.PostRepo{Posts: seedPosts(total)}
	svc := NewFeedLister(repo, &mock.Resolver{})

	seen := make(map[db.UUID]int)
	token := ""
	for pages := 0; ; pages++ {
		if pages > total {
			t.Fatal("pagination did not terminate")
		}
		out, err := svc.ListFeed(context.Background(), port.ListPostsInput{CursorToken: token, Limit: 5})
		if err != nil {
			t.Fatalf("page %d: %v", pages, err)
		}
		for _, item := range out.Items {
			seen[item.ID]++
		}
		if out.NextCursor == nil {
			break
		}
		token = *out.NextCursor
	}

	if len(seen) != total {
		t.Fatalf("saw %d distinct rows, want %d", len(seen), total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("row %s returned %d times", id, n)
		}
	}
}

// A burst of posts created within the same millisecond must still paginate
// without losing rows: DATETIME(6) keys differ only below the millisecond, so
// the cursor has to carry the full fractional second.
func TestListFeed_MicrosecondBurstLosesNoRows(t *testing.T) {
	const total = 12
	base := time.Date(2026, 3, 1, 12, 0, 0, 123_000_000, time.UTC)
	author := db.NewUUID()

	posts := make([]model.Post, 0, total)
	for i := 0; i < total; i++ {
		posts = append(posts, model.Post{
			ID:        db.NewUUID(),
			AuthorID:  author,
			MediaType: model.MediaTypeImage,
			MediaURL:  "https://cdn.example.com/pic.jpg",
			// pairs share a microsecond so the tiebreak still matters
			CreatedAt: base.Add(time.Duration(i/2) * time.Microsecond),
		})
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		a := uuid.UUID(posts[i].ID)
		b := uuid.UUID(posts[j].ID)
		return bytes.Compare(a[:], b[:]) > 0
	})

	svc := NewFeedLister(&mock.PostRepo{Posts: posts}, &mock.Resolver{})

	seen := make(map[db.UUID]int)
	token := ""
	for pages := 0; ; pages++ {
		if pages > total {
			t.Fatal("pagination did not terminate")
		}
		out, err := svc.ListFeed(context.Background(), port.ListPostsInput{CursorToken: token, Limit: 5})
		if err != nil {
			t.Fatalf("page %d: %v", pages, err)
		}
		for _, item := range out.Items {
			seen[item.ID]++
		}
		if out.NextCursor == nil {
			break
		}
		token = *out.NextCursor
	}

	if len(seen) != total {
		t.Fatalf("saw %d distinct rows, want %d", len(seen), total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("row %s returned %d times", id, n)
		}
	}
}

func TestListFeed_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int // fetch size passed to the repo, limit+1
	}{
		{"zero falls back to default", 0, FeedDefaultLimit + 1},
		{"negative falls back to default", -3, FeedDefaultLimit + 1},
		{"above max is clamped", 500, FeedMaxLimit + 1},
		{"in range passes through", 7, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.PostRepo{}
			svc := NewFeedLister(repo, &mock.Resolver{})
			if _, err := svc.ListFeed(context.Background(), port.ListPostsInput{Limit: tc.requested}); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if repo.LastFetchSize != tc.want {
				t.Errorf("fetch size %d, want %d", repo.LastFetchSize, tc.want)
			}
		})
	}
}

func TestListFeed_InvalidCursor(t *testing.T) {
	svc := NewFeedLister(&mock.PostRepo{}, &mock.Resolver{})

	_, err := svc.ListFeed(context.Background(), port.ListPostsInput{CursorToken: "not-a-token"})
	if !errors.Is(err, cursor.ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestListFeed_TopicFilter(t *testing.T) {
	repo := &mock.PostRepo{}
	svc := NewFeedLister(repo, &mock.Resolver{})

	if _, err := svc.ListFeed(context.Background(), port.ListPostsInput{Topic: "travel"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.LastFilter.Topic != "travel" {
		t.Errorf("filter topic %q, want travel", repo.LastFilter.Topic)
	}
	if repo.LastFilter.AuthorID != nil {
		t.Error("feed queries must not carry an author filter")
	}
}

func TestListFeed_SignsVideoPlayback(t *testing.T) {
	thumb := "https://watch.example.com/vid42/thumbnails/thumbnail.jpg"
	posts := []model.Post{{
		ID:           db.NewUUID(),
		MediaType:    model.MediaTypeVideo,
		MediaRef:     "vid42",
		MediaURL:     "https://watch.example.com/vid42/manifest/video.m3u8",
		ThumbnailURL: &thumb,
		CreatedAt:    time.Now().UTC(),
	}}
	resolver := &mock.Resolver{URLs: playback.URLs{
		HLS:         "https://watch.example.com/vid42/manifest/video.m3u8?token=abc",
		SignedToken: "abc",
	}}
	svc := NewFeedLister(&mock.PostRepo{Posts: posts}, resolver)

	out, err := svc.ListFeed(context.Background(), port.ListPostsInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !resolver.ResolveCalled {
		t.Fatal("expected playback to be re-signed for the video post")
	}
	if resolver.LastUID != "vid42" {
		t.Errorf("resolver called with %q, want vid42", resolver.LastUID)
	}
	if resolver.LastProvided.Thumbnail != thumb {
		t.Error("stored thumbnail URL not forwarded to the resolver")
	}
	if out.Items[0].Playback == nil || out.Items[0].Playback.SignedToken != "abc" {
		t.Error("expected signed playback on the item")
	}
}

func TestListFeed_SigningFailureDegradesToDurableURLs(t *testing.T) {
	posts := []model.Post{{
		ID:        db.NewUUID(),
		MediaType: model.MediaTypeVideo,
		MediaRef:  "vid42",
		MediaURL:  "https://watch.example.com/vid42/manifest/video.m3u8",
		CreatedAt: time.Now().UTC(),
	}}
	resolver := &mock.Resolver{ResolveErr: errors.New("bad key")}
	svc := NewFeedLister(&mock.PostRepo{Posts: posts}, resolver)

	out, err := svc.ListFeed(context.Background(), port.ListPostsInput{})
	if err != nil {
		t.Fatalf("signing failure must not fail the page: %v", err)
	}
	if out.Items[0].Playback != nil {
		t.Error("expected no playback block when signing failed")
	}
	if out.Items[0].MediaURL == "" {
		t.Error("durable URL must survive on the row")
	}
}

func TestListUserPosts_AuthorFilter(t *testing.T) {
	repo := &mock.PostRepo{}
	svc := NewFeedLister(repo, &mock.Resolver{})

	authorID := db.NewUUID()
	if _, err := svc.ListUserPosts(context.Background(), port.ListUserPostsInput{AuthorID: authorID}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.LastFilter.AuthorID == nil || *repo.LastFilter.AuthorID != authorID {
		t.Error("author filter not forwarded to the repo")
	}
}

func TestListComments_Page(t *testing.T) {
	postID := db.NewUUID()
	posts := &mock.PostRepo{Posts: []model.Post{{ID: postID, CreatedAt: time.Now().UTC()}}}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var comments []model.Comment
	for i := 0; i < 3; i++ {
		comments = append(comments, model.Comment{
			ID:        db.NewUUID(),
			PostID:    postID,
			Body:      "hi",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	repo := &mock.CommentRepo{Comments: comments}
	svc := NewCommentsLister(posts, repo)

	out, err := svc.ListComments(context.Background(), port.ListCommentsInput{PostID: postID, Limit: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out.Items))
	}
	if out.NextCursor == nil {
		t.Fatal("expected a next cursor")
	}
	if repo.LastFetchSize != 3 {
		t.Errorf("expected fetch size 3, got %d", repo.LastFetchSize)
	}

	// second page drains the thread
	out2, err := svc.ListComments(context.Background(), port.ListCommentsInput{
		PostID: postID, CursorToken: *out.NextCursor, Limit: 2,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out2.Items) != 1 || out2.NextCursor != nil {
		t.Errorf("expected the final page with 1 item, got %d items", len(out2.Items))
	}
}

func TestListComments_PostNotFound(t *testing.T) {
	svc := NewCommentsLister(&mock.PostRepo{}, &mock.CommentRepo{})

	_, err := svc.ListComments(context.Background(), port.ListCommentsInput{PostID: db.NewUUID()})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListComments_EmptyThread(t *testing.T) {
	postID := db.NewUUID()
	posts := &mock.PostRepo{Posts: []model.Post{{ID: postID, CreatedAt: time.Now().UTC()}}}
	svc := NewCommentsLister(posts, &mock.CommentRepo{})

	out, err := svc.ListComments(context.Background(), port.ListCommentsInput{PostID: postID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Items == nil {
		t.Error("expected an empty slice, not nil")
	}
	if out.NextCursor != nil {
		t.Error("expected no next cursor for an empty thread")
	}
}
