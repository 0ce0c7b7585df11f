package port

import "github.com/skundu42/doom-backend/internal/playback"

// PlaybackResolver builds delivery URLs for a provider UID. Resolve signs
// them when a key is configured; ResolveUnsigned returns the durable form.
type PlaybackResolver interface {
	Resolve(uid string, provided playback.Provided) (playback.URLs, error)
	ResolveUnsigned(uid string, provided playback.Provided) playback.URLs
}
