package post

import "errors"

var (
	// ErrNotFound means the referenced post does not exist.
	ErrNotFound = errors.New("post: not found")
	// ErrEmptyBody means a comment had no content after trimming.
	ErrEmptyBody = errors.New("post: comment body is empty")
)
