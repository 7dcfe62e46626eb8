package domain

import (
	"time"

	"github.com/google/uuid"
)

// Superannuation is a retirement account held by a user.
type Superannuation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"-"` // populated by the repository join

	Provider               string  `json:"provider"`
	InvestmentPlan         string  `json:"investment_plan"`
	Balance                float64 `json:"balance"`
	MarketReturns          float64 `json:"market_returns"`
	VoluntaryContributions float64 `json:"voluntary_contributions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the owning user's ID
func (s *Superannuation) OwnerID() uuid.UUID { return s.UserID }
