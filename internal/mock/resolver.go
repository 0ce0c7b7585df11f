package mock

import (
	"github.com/skundu42/doom-backend/internal/playback"
)

// Resolver implements port.PlaybackResolver for tests.
type Resolver struct {
	URLs       playback.URLs
	ResolveErr error

	ResolveCalled         bool
	ResolveUnsignedCalled bool
	LastUID               string
	LastProvided          playback.Provided
}

func (m *Resolver) Resolve(uid string, provided playback.Provided) (playback.URLs, error) {
	m.ResolveCalled = true
	m.LastUID = uid
	m.LastProvided = provided
	if m.ResolveErr != nil {
		return playback.URLs{}, m.ResolveErr
	}
	return m.URLs, nil
}

func (m *Resolver) ResolveUnsigned(uid string, provided playback.Provided) playback.URLs {
	m.ResolveUnsignedCalled = true
	m.LastUID = uid
	m.LastProvided = provided
	out := m.URLs
	out.SignedToken = ""
	return out
}
