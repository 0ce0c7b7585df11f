package port

import (
	"context"
	"errors"
)

// ErrVideoNotFoundRemote is returned by GetVideo when the provider does not
// know the UID. DeleteVideo swallows it: deleting an already-deleted resource
// is a success.
var ErrVideoNotFoundRemote = errors.New("stream: video not found")

// DirectUpload is a one-time upload grant minted by the provider. The client
// PUTs the file bytes straight to UploadURL; this service never sees them.
type DirectUpload struct {
	UID       string
	UploadURL string
}

// VideoState is the provider's live view of a video.
type VideoState struct {
	UID             string
	ReadyToStream   bool
	State           string
	ErrorCode       string
	ErrorText       string
	DurationSeconds float64
	HLS             string
	Dash            string
	Thumbnail       string
}

// StreamClient talks to the managed video-hosting API.
type StreamClient interface {
	CreateDirectUpload(ctx context.Context, maxDurationSeconds int, creator string, name string) (DirectUpload, error)
	GetVideo(ctx context.Context, uid string) (VideoState, error)
	DeleteVideo(ctx context.Context, uid string) error
}
