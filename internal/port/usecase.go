package port

import (
	"context"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/playback"
)

type UUIDGen func() db.UUID

// UploadRequester mints a one-time direct-upload grant with the provider and
// registers the pending video locally.
type UploadRequester interface {
	RequestUpload(ctx context.Context, in RequestUploadInput) (RequestUploadOutput, error)
}
type RequestUploadInput struct {
	OwnerID  db.UUID
	Filename string
	MimeType string
}
type RequestUploadOutput struct {
	UID                string `json:"uid"`
	UploadURL          string `json:"upload_url"`
	MaxDurationSeconds int    `json:"max_duration_seconds"`
}

// VideoStatusGetter is the client-poll reconciliation path: it queries the
// provider, applies the duration policy, writes back the local row and
// returns the read model with fresh playback URLs.
type VideoStatusGetter interface {
	GetStatus(ctx context.Context, uid string, requesterID db.UUID) (VideoStatusOutput, error)
}
type VideoStatusOutput struct {
	UID             string        `json:"uid"`
	State           string        `json:"state"`
	ReadyToStream   bool          `json:"ready_to_stream"`
	DurationSeconds *int          `json:"duration_seconds,omitempty"`
	ErrorCode       *string       `json:"error_code,omitempty"`
	ErrorText       *string       `json:"error_text,omitempty"`
	Playback        playback.URLs `json:"playback"`
}

// WebhookApplier is the provider-webhook reconciliation path. It trusts the
// payload and never carries end-user identity.
type WebhookApplier interface {
	ApplyWebhook(ctx context.Context, in WebhookInput) error
}
type WebhookInput struct {
	UID             string
	ReadyToStream   *bool
	DurationSeconds *float64
	State           *string
}

// VideoPurger deletes the remote resource; ran by the worker when the inline
// backstop delete could not reach the provider.
type VideoPurger interface {
	PurgeVideo(ctx context.Context, uid string) error
}

// VideoAttachmentVerifier re-checks ownership and readiness before a video is
// attached to a post.
type VideoAttachmentVerifier interface {
	VerifyAttachment(ctx context.Context, uid string, authorID db.UUID) (*model.Video, error)
}

// PostCreator persists a new post, resolving durable media URLs for videos.
type PostCreator interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*model.Post, error)
}

// PostMedia is the closed media variant decoded at the boundary:
// exactly one of ImageURL (image) or VideoUID (video) is set.
type PostMedia struct {
	Type     model.MediaType
	ImageURL string
	VideoUID string
}
type CreatePostInput struct {
	AuthorID db.UUID
	Media    PostMedia
	Caption  string
	Topic    string
}

// PostGetter retrieves a single post.
type PostGetter interface {
	GetPost(ctx context.Context, id db.UUID) (*model.Post, error)
}

// FeedLister serves cursor-paginated post pages (global feed and profile
// timelines share it).
type FeedLister interface {
	ListFeed(ctx context.Context, in ListPostsInput) (PostPageOutput, error)
	ListUserPosts(ctx context.Context, in ListUserPostsInput) (PostPageOutput, error)
}
type ListPostsInput struct {
	Topic       string
	CursorToken string
	Limit       int
}
type ListUserPostsInput struct {
	AuthorID    db.UUID
	CursorToken string
	Limit       int
}
type PostPageOutput struct {
	Items      []PostOutput `json:"items"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

// PostOutput is a post enriched with fresh signed playback URLs for video
// entries.
type PostOutput struct {
	model.Post
	Playback *playback.URLs `json:"playback,omitempty"`
}

// CommentsLister serves cursor-paginated comment threads.
type CommentsLister interface {
	ListComments(ctx context.Context, in ListCommentsInput) (CommentPageOutput, error)
}
type ListCommentsInput struct {
	PostID      db.UUID
	CursorToken string
	Limit       int
}
type CommentPageOutput struct {
	Items      []model.Comment `json:"items"`
	NextCursor *string         `json:"next_cursor,omitempty"`
}

// CommentCreator adds a comment and bumps the post's comment counter.
type CommentCreator interface {
	CreateComment(ctx context.Context, in CreateCommentInput) (*model.Comment, error)
}
type CreateCommentInput struct {
	PostID   db.UUID
	AuthorID db.UUID
	Body     string
}

// PostToggler flips the like/bookmark relations.
type PostToggler interface {
	Toggle(ctx context.Context, kind ToggleKind, postID, userID db.UUID, on bool) (ToggleOutput, error)
}
type ToggleOutput struct {
	On      bool `json:"on"`
	Changed bool `json:"changed"`
}

// PostCounterBumper records views and shares.
type PostCounterBumper interface {
	RecordView(ctx context.Context, postID db.UUID) error
	RecordShare(ctx context.Context, postID db.UUID) error
}

// UserCreator creates a profile, retrying deterministically on username
// collisions.
type UserCreator interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
}
type CreateUserInput struct {
	AuthUID     string
	Username    string
	DisplayName string
	AvatarURL   string
}

// UserGetter retrieves a profile by ID.
type UserGetter interface {
	GetUser(ctx context.Context, id db.UUID) (*model.User, error)
}

// ImageUploadLinkGenerator returns a presigned link to upload an image file.
type ImageUploadLinkGenerator interface {
	GenerateImageUploadLink(ctx context.Context, in GenerateImageUploadLinkInput) (GenerateImageUploadLinkOutput, error)
}
type GenerateImageUploadLinkInput struct {
	OwnerID  db.UUID
	Filename string
}
type GenerateImageUploadLinkOutput struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
}
