package model

import (
	"time"

	"github.com/skundu42/doom-backend/internal/db"
)

// User is a profile record. AuthUID is the subject claim of the identity
// provider's token; Username is unique and suffixed on collision.
type User struct {
	ID          db.UUID   `json:"id"`
	AuthUID     string    `json:"auth_uid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
