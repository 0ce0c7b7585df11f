package user

import "errors"

var (
	// ErrNotFound means the profile does not exist.
	ErrNotFound = errors.New("user: not found")
	// ErrUsernameExhausted means every suffixed candidate collided and no
	// concurrently created profile explained the collisions.
	ErrUsernameExhausted = errors.New("user: could not find a free username")
)
