package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the server-side record of an issued token. The ID doubles as
// the JWT's jti claim; deleting the row revokes the token.
type AuthToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token has passed its expiry.
func (t *AuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
