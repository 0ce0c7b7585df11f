package port

import "context"

// TaskDispatcher enqueues asynchronous tasks. The only task today is the
// remote purge retry, used when the inline backstop delete fails upstream.
type TaskDispatcher interface {
	EnqueuePurgeVideo(ctx context.Context, uid string) error
}
