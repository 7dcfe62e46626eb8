package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankAccount is a single bank account held by a user. A user may hold many.
type BankAccount struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"-"` // populated by the repository join

	Bank         string  `json:"bank"`
	AccountName  string  `json:"account_name"`
	Balance      float64 `json:"balance"`
	InterestRate float64 `json:"interest_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the owning user's ID
func (b *BankAccount) OwnerID() uuid.UUID { return b.UserID }

// BankAccountFilter carries the optional list query parameters. Exactly one
// of Bank, AccountName or Search is applied, in that order of precedence.
type BankAccountFilter struct {
	Bank        string
	AccountName string
	Search      string
	Ordering    string // one of "bank", "account_name", "balance"
}
