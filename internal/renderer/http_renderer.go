package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/playback"
	"github.com/skundu42/doom-backend/internal/port"
)

// detailsTTL caps how long a rendered post stays cached. Kept under the
// playback token validity so a cached signed URL never outlives its token.
const detailsTTL = 5 * time.Minute

// HTTPRenderer mediates between HTTP handlers and the post getter use case.
// It provides caching capabilities and returns both the JSON representation
// of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderGetPost returns the cached JSON result and its ETag if available
	// or executes the underlying use case and caches the output otherwise.
	RenderGetPost(ctx context.Context, getter port.PostGetter, id db.UUID) ([]byte, string, error)
}

type httpRenderer struct {
	cache    port.Cache
	resolver port.PlaybackResolver
}

// compile-time check: *httpRenderer must satisfy HTTPRenderer
var _ HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache, resolver port.PlaybackResolver) HTTPRenderer {
	return &httpRenderer{cache: cache, resolver: resolver}
}

// RenderGetPost fetches post details either from cache or from the wrapped
// use case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderGetPost(ctx context.Context, getter port.PostGetter, id db.UUID) ([]byte, string, error) {
	raw, err := r.cache.GetPostDetails(ctx, id)
	etag, errEtag := r.cache.GetEtagPostDetails(ctx, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	p, err := getter.GetPost(ctx, id)
	if err != nil {
		return nil, "", err
	}

	out := port.PostOutput{Post: *p}
	if p.MediaType == model.MediaTypeVideo {
		provided := playback.Provided{HLS: p.MediaURL}
		if p.ThumbnailURL != nil {
			provided.Thumbnail = *p.ThumbnailURL
		}
		if urls, err := r.resolver.Resolve(p.MediaRef, provided); err == nil {
			out.Playback = &urls
		}
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetPostDetails(ctx, id, raw, detailsTTL)
	r.cache.SetEtagPostDetails(ctx, id, etag, detailsTTL)

	return raw, etag, nil
}
