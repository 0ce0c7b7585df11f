package playback

import (
	"crypto/rsa"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is how long a signed playback token stays valid.
const TokenTTL = 10 * time.Minute

// URLs groups the delivery endpoints for one video, all carrying the same
// signed token when signing is configured.
type URLs struct {
	HLS         string `json:"hls"`
	Dash        string `json:"dash"`
	Thumbnail   string `json:"thumbnail"`
	SignedToken string `json:"signed_token,omitempty"`
}

// Provided carries whatever URLs the provider reported; empty or relative
// values are filled in or normalised against the delivery host.
type Provided struct {
	HLS       string
	Dash      string
	Thumbnail string
}

// Resolver builds playback and thumbnail URLs for a provider UID. It is
// stateless: output depends only on its configuration, the inputs and the
// clock.
type Resolver struct {
	host  string
	keyID string
	key   *rsa.PrivateKey
	now   func() time.Time
}

// NewResolver builds a Resolver for the given delivery host. When both
// signingKeyID and signingKeyPEM are set, every resolved URL gets a
// short-lived token appended; otherwise URLs are returned unsigned.
func NewResolver(deliveryHost, signingKeyID, signingKeyPEM string) (*Resolver, error) {
	r := &Resolver{
		host: strings.TrimSuffix(deliveryHost, "/"),
		now:  time.Now,
	}

	if signingKeyID != "" && signingKeyPEM != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(signingKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("invalid playback signing key: %w", err)
		}
		r.keyID = signingKeyID
		r.key = key
	}

	return r, nil
}

// ResolveUnsigned returns the HLS/DASH/thumbnail URLs for uid without any
// token, defaulting whatever the provider did not supply. These are the
// durable URLs stored on posts.
func (r *Resolver) ResolveUnsigned(uid string, provided Provided) URLs {
	return URLs{
		HLS:       r.normalise(provided.HLS, fmt.Sprintf("/%s/manifest/video.m3u8", uid)),
		Dash:      r.normalise(provided.Dash, fmt.Sprintf("/%s/manifest/video.mpd", uid)),
		Thumbnail: r.normalise(provided.Thumbnail, fmt.Sprintf("/%s/thumbnails/thumbnail.jpg", uid)),
	}
}

// Resolve returns the HLS/DASH/thumbnail URLs for uid, defaulting any the
// provider did not supply and signing all of them when a key is configured.
func (r *Resolver) Resolve(uid string, provided Provided) (URLs, error) {
	out := r.ResolveUnsigned(uid, provided)

	if r.key == nil {
		return out, nil
	}

	token, err := r.signToken(uid)
	if err != nil {
		return URLs{}, fmt.Errorf("signing playback token for video %q: %w", uid, err)
	}
	out.HLS = appendToken(out.HLS, token)
	out.Dash = appendToken(out.Dash, token)
	out.Thumbnail = appendToken(out.Thumbnail, token)
	out.SignedToken = token

	return out, nil
}

// normalise fills in the default path when the provider gave nothing and
// turns relative paths into absolute URLs against the delivery host.
func (r *Resolver) normalise(raw, defaultPath string) string {
	if raw == "" {
		raw = defaultPath
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return "https://" + r.host + raw
}

func (r *Resolver) signToken(uid string) (string, error) {
	now := r.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = r.keyID
	return token.SignedString(r.key)
}

func appendToken(rawURL, token string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		// rawURL was built locally; a parse failure means a bad provider value
		return rawURL
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
