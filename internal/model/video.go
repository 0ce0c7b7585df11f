package model

import (
	"time"

	"github.com/skundu42/doom-backend/internal/db"
)

type VideoStatus string

const (
	VideoStatusPending    VideoStatus = "pending"
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusReady      VideoStatus = "ready"
	VideoStatusError      VideoStatus = "error"
)

// MaxVideoDurationSeconds is the hard cap enforced on every reconciliation,
// regardless of what the client negotiated at upload time.
const MaxVideoDurationSeconds = 180

// Video is the local projection of a remotely hosted video resource.
// The UID is assigned by the stream provider and never changes.
type Video struct {
	UID             string      `json:"uid"`
	OwnerID         db.UUID     `json:"owner_id"`
	Status          VideoStatus `json:"status"`
	DurationSeconds *int        `json:"duration_seconds,omitempty"`
	ErrorMessage    *string     `json:"error_message,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// IsTerminal reports whether the video can no longer become ready.
func (v *Video) IsTerminal() bool {
	return v.Status == VideoStatusError
}
