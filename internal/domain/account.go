package domain

import (
	"time"

	"github.com/google/uuid"
)

// AllocationIntensity is the stored risk profile tag on an account.
type AllocationIntensity int

// Allocation intensity wire values
const (
	IntensityLight AllocationIntensity = iota
	IntensityNormal
	IntensityAggressive
)

// Valid reports whether the value is one of the known intensities.
func (a AllocationIntensity) Valid() bool {
	switch a {
	case IntensityLight, IntensityNormal, IntensityAggressive:
		return true
	}
	return false
}

func (a AllocationIntensity) String() string {
	switch a {
	case IntensityLight:
		return "Light"
	case IntensityNormal:
		return "Normal"
	case IntensityAggressive:
		return "Aggressive"
	}
	return "Unknown"
}

// Account is a user's financial profile. At most one exists per user.
type Account struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"-"` // populated by the repository join

	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`

	Salary        float64 `json:"salary"`
	EoyCashGoal   float64 `json:"eoy_cash_goal"`
	EmergencyFund float64 `json:"emergency_fund"`

	AllocationIntensity      AllocationIntensity `json:"allocation_intensity"`
	AllocationEtfs           float64             `json:"allocation_etfs"`
	AllocationStocks         float64             `json:"allocation_stocks"`
	AllocationCryptocurrency float64             `json:"allocation_cryptocurrency"`
	AllocationCash           float64             `json:"allocation_cash"`
	AllocationManagedFunds   float64             `json:"allocation_managed_funds"`
	AllocationOther          float64             `json:"allocation_other"`

	ShortTermTaxRate float64 `json:"short_term_tax_rate"`
	LongTermTaxRate  float64 `json:"long_term_tax_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the owning user's ID
func (a *Account) OwnerID() uuid.UUID { return a.UserID }
