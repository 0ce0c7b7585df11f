package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/skundu42/doom-backend/internal/db"
)

// ErrInvalidCursor is returned for any token that cannot be decoded back into
// a Cursor. Handlers must map it to a client error, never a 500.
var ErrInvalidCursor = errors.New("cursor: invalid pagination token")

// timeLayout pins microsecond precision so Encode is deterministic and tokens
// round-trip DATETIME(6) columns without losing fractional seconds. Anything
// coarser would drop the tail of the ordering key and make the page predicate
// skip rows that share the truncated instant.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Cursor marks the last seen row of a page in the strict
// (created_at DESC, id DESC) order. It only ever lives inside a token;
// it is never persisted.
type Cursor struct {
	OrderingKey time.Time
	TiebreakID  db.UUID
}

type wireCursor struct {
	T  string `json:"t"`
	ID string `json:"id"`
}

// Encode serializes the cursor into an opaque URL-safe token.
// Encoding the same cursor always yields the same token.
func Encode(c Cursor) string {
	wire := wireCursor{
		T:  c.OrderingKey.UTC().Format(timeLayout),
		ID: c.TiebreakID.String(),
	}
	raw, _ := json.Marshal(wire)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses a token produced by Encode. Malformed input of any kind
// (bad base64, bad JSON, bad timestamp, non-UUID tiebreak) yields
// ErrInvalidCursor.
func Decode(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	var wire wireCursor
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	if wire.T == "" || wire.ID == "" {
		return Cursor{}, ErrInvalidCursor
	}

	t, err := time.Parse(timeLayout, wire.T)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	id, err := db.ParseUUID(wire.ID)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	return Cursor{OrderingKey: t, TiebreakID: id}, nil
}
