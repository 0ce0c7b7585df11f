package video

import "errors"

var (
	// ErrNotFound means no local projection exists for the UID.
	ErrNotFound = errors.New("video: not found")
	// ErrForbidden means the requester does not own the video.
	ErrForbidden = errors.New("video: not owned by requester")
	// ErrNotReady means the video cannot be attached to a post yet.
	ErrNotReady = errors.New("video: not ready to stream")
	// ErrDurationExceeded is the terminal outcome of the duration backstop.
	ErrDurationExceeded = errors.New("video: duration exceeds the allowed maximum")
	// ErrUpstream wraps provider API failures; callers may retry.
	ErrUpstream = errors.New("video: stream provider request failed")
)
