package domain

import (
	"time"

	"github.com/google/uuid"
)

// Etf is an exchange-traded fund holding. (user, ticker) is unique.
// UnitsHeld and AverageCost are system-managed: forced to zero at creation
// and never writable by clients.
type Etf struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"-"` // populated by the repository join

	Ticker      string  `json:"ticker"`
	FundName    string  `json:"fund_name"`
	UnitsHeld   float64 `json:"units_held"`
	AverageCost float64 `json:"average_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the owning user's ID
func (e *Etf) OwnerID() uuid.UUID { return e.UserID }

// TransactionType tags an ETF transaction as a buy or a sell.
type TransactionType int

// Transaction type wire values
const (
	TransactionBuy TransactionType = iota
	TransactionSell
)

// Valid reports whether the value is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionBuy || t == TransactionSell
}

func (t TransactionType) String() string {
	switch t {
	case TransactionBuy:
		return "Buy"
	case TransactionSell:
		return "Sell"
	}
	return "Unknown"
}

// EtfTransaction is a buy/sell event against an ETF. Ownership is transitive
// through the referenced ETF; UserID is filled from the join on reads.
type EtfTransaction struct {
	ID     uuid.UUID `json:"id"`
	EtfID  uuid.UUID `json:"etf"`
	UserID uuid.UUID `json:"-"` // owner of the referenced ETF

	TransactionType TransactionType `json:"transaction_type"`
	OrderDate       time.Time       `json:"order_date"`
	Units           float64         `json:"units"`
	OrderCost       float64         `json:"order_cost"`
	Brokerage       *float64        `json:"brokerage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the user owning the referenced ETF
func (t *EtfTransaction) OwnerID() uuid.UUID { return t.UserID }
