package mock

import (
	"context"

	"github.com/skundu42/doom-backend/internal/port"
)

// StreamClient implements port.StreamClient for tests.
type StreamClient struct {
	DirectUpload    port.DirectUpload
	DirectUploadErr error

	VideoState port.VideoState
	GetErr     error

	DeleteErr error

	CreateCalled   bool
	CreateMaxDur   int
	CreateCreator  string
	CreateName     string
	GetCalled      bool
	GetUID         string
	DeleteCalled   int
	LastDeletedUID string
}

func (m *StreamClient) CreateDirectUpload(ctx context.Context, maxDurationSeconds int, creator string, name string) (port.DirectUpload, error) {
	m.CreateCalled = true
	m.CreateMaxDur = maxDurationSeconds
	m.CreateCreator = creator
	m.CreateName = name
	if m.DirectUploadErr != nil {
		return port.DirectUpload{}, m.DirectUploadErr
	}
	return m.DirectUpload, nil
}

func (m *StreamClient) GetVideo(ctx context.Context, uid string) (port.VideoState, error) {
	m.GetCalled = true
	m.GetUID = uid
	if m.GetErr != nil {
		return port.VideoState{}, m.GetErr
	}
	return m.VideoState, nil
}

func (m *StreamClient) DeleteVideo(ctx context.Context, uid string) error {
	m.DeleteCalled++
	m.LastDeletedUID = uid
	return m.DeleteErr
}
