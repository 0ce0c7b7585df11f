package model

import (
	"time"

	"github.com/skundu42/doom-backend/internal/db"
)

type Comment struct {
	ID        db.UUID   `json:"id"`
	PostID    db.UUID   `json:"post_id"`
	AuthorID  db.UUID   `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
