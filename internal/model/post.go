package model

import (
	"time"

	"github.com/skundu42/doom-backend/internal/db"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Post is a feed entry. For video posts MediaRef holds the provider UID and
// MediaURL/ThumbnailURL hold the durable playback URLs resolved at creation
// time; for image posts MediaRef and MediaURL both hold the image URL.
type Post struct {
	ID           db.UUID   `json:"id"`
	AuthorID     db.UUID   `json:"author_id"`
	MediaType    MediaType `json:"media_type"`
	MediaRef     string    `json:"media_ref"`
	MediaURL     string    `json:"media_url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Caption      string    `json:"caption"`
	Topic        string    `json:"topic,omitempty"`

	LikeCount     uint `json:"like_count"`
	BookmarkCount uint `json:"bookmark_count"`
	ViewCount     uint `json:"view_count"`
	CommentCount  uint `json:"comment_count"`
	ShareCount    uint `json:"share_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
