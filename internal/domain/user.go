package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated identity. Email is the login identifier.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Owned is implemented by every record attached to a user; it is the hook
// the ownership gate uses to extract the owner.
type Owned interface {
	OwnerID() uuid.UUID
}

// IsOwnerOrSuperuser reports whether the user may access an object owned by
// ownerID. Superusers pass for any owner; everyone else must be the owner.
func IsOwnerOrSuperuser(user *User, ownerID uuid.UUID) bool {
	if user == nil {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	return user.ID == ownerID
}
