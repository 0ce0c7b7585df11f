package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypePurgeVideo = "video:purge"

type PurgeVideoPayload struct {
	UID string `json:"uid"`
}

// NewPurgeVideoTask creates an Asynq task for deleting a remote video by its
// provider UID.
func NewPurgeVideoTask(uid string) (*asynq.Task, error) {
	p := PurgeVideoPayload{UID: uid}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal purge-video payload: %w", err)
	}
	return asynq.NewTask(TypePurgeVideo, data, asynq.MaxRetry(10)), nil
}

// ParsePurgeVideoPayload parses the task payload to PurgeVideoPayload.
func ParsePurgeVideoPayload(t *asynq.Task) (PurgeVideoPayload, error) {
	var p PurgeVideoPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return PurgeVideoPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
