package mock

import "context"

// TaskDispatcher implements port.TaskDispatcher for tests.
type TaskDispatcher struct {
	EnqueueErr error

	EnqueueCalled int
	LastUID       string
}

func (m *TaskDispatcher) EnqueuePurgeVideo(ctx context.Context, uid string) error {
	m.EnqueueCalled++
	m.LastUID = uid
	return m.EnqueueErr
}
