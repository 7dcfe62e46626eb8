package dto

import (
	"time"

	"networth/internal/domain"
)

const dateLayout = "2006-01-02"

// AccountRequest is the create/PUT payload. Numeric fields are pointers so
// that a legitimate zero still counts as present.
type AccountRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`

	Salary        *float64 `json:"salary" validate:"required"`
	EoyCashGoal   *float64 `json:"eoy_cash_goal" validate:"required"`
	EmergencyFund *float64 `json:"emergency_fund" validate:"required"`

	AllocationIntensity      *int     `json:"allocation_intensity" validate:"omitempty,gte=0,lte=2"`
	AllocationEtfs           *float64 `json:"allocation_etfs" validate:"required,gte=0,lte=100"`
	AllocationStocks         *float64 `json:"allocation_stocks" validate:"required,gte=0,lte=100"`
	AllocationCryptocurrency *float64 `json:"allocation_cryptocurrency" validate:"required,gte=0,lte=100"`
	AllocationCash           *float64 `json:"allocation_cash" validate:"required,gte=0,lte=100"`
	AllocationManagedFunds   *float64 `json:"allocation_managed_funds" validate:"required,gte=0,lte=100"`
	AllocationOther          *float64 `json:"allocation_other" validate:"required,gte=0,lte=100"`

	ShortTermTaxRate *float64 `json:"short_term_tax_rate" validate:"required,gte=0,lte=100"`
	LongTermTaxRate  *float64 `json:"long_term_tax_rate" validate:"required,gte=0,lte=100"`
}

// Apply copies the full payload onto the account. Owner and timestamps are
// untouched; DateOfBirth is pre-validated by the datetime tag.
func (r *AccountRequest) Apply(account *domain.Account) {
	account.FirstName = r.FirstName
	account.LastName = r.LastName
	account.DateOfBirth, _ = time.Parse(dateLayout, r.DateOfBirth)

	account.Salary = *r.Salary
	account.EoyCashGoal = *r.EoyCashGoal
	account.EmergencyFund = *r.EmergencyFund

	account.AllocationIntensity = domain.IntensityNormal
	if r.AllocationIntensity != nil {
		account.AllocationIntensity = domain.AllocationIntensity(*r.AllocationIntensity)
	}
	account.AllocationEtfs = *r.AllocationEtfs
	account.AllocationStocks = *r.AllocationStocks
	account.AllocationCryptocurrency = *r.AllocationCryptocurrency
	account.AllocationCash = *r.AllocationCash
	account.AllocationManagedFunds = *r.AllocationManagedFunds
	account.AllocationOther = *r.AllocationOther

	account.ShortTermTaxRate = *r.ShortTermTaxRate
	account.LongTermTaxRate = *r.LongTermTaxRate
}

// AccountPatchRequest is the PATCH payload; absent fields stay unchanged.
type AccountPatchRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`

	Salary        *float64 `json:"salary"`
	EoyCashGoal   *float64 `json:"eoy_cash_goal"`
	EmergencyFund *float64 `json:"emergency_fund"`

	AllocationIntensity      *int     `json:"allocation_intensity" validate:"omitempty,gte=0,lte=2"`
	AllocationEtfs           *float64 `json:"allocation_etfs" validate:"omitempty,gte=0,lte=100"`
	AllocationStocks         *float64 `json:"allocation_stocks" validate:"omitempty,gte=0,lte=100"`
	AllocationCryptocurrency *float64 `json:"allocation_cryptocurrency" validate:"omitempty,gte=0,lte=100"`
	AllocationCash           *float64 `json:"allocation_cash" validate:"omitempty,gte=0,lte=100"`
	AllocationManagedFunds   *float64 `json:"allocation_managed_funds" validate:"omitempty,gte=0,lte=100"`
	AllocationOther          *float64 `json:"allocation_other" validate:"omitempty,gte=0,lte=100"`

	ShortTermTaxRate *float64 `json:"short_term_tax_rate" validate:"omitempty,gte=0,lte=100"`
	LongTermTaxRate  *float64 `json:"long_term_tax_rate" validate:"omitempty,gte=0,lte=100"`
}

// Apply copies only the present fields onto the account.
func (r *AccountPatchRequest) Apply(account *domain.Account) {
	if r.FirstName != nil {
		account.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		account.LastName = *r.LastName
	}
	if r.DateOfBirth != nil {
		account.DateOfBirth, _ = time.Parse(dateLayout, *r.DateOfBirth)
	}
	if r.Salary != nil {
		account.Salary = *r.Salary
	}
	if r.EoyCashGoal != nil {
		account.EoyCashGoal = *r.EoyCashGoal
	}
	if r.EmergencyFund != nil {
		account.EmergencyFund = *r.EmergencyFund
	}
	if r.AllocationIntensity != nil {
		account.AllocationIntensity = domain.AllocationIntensity(*r.AllocationIntensity)
	}
	if r.AllocationEtfs != nil {
		account.AllocationEtfs = *r.AllocationEtfs
	}
	if r.AllocationStocks != nil {
		account.AllocationStocks = *r.AllocationStocks
	}
	if r.AllocationCryptocurrency != nil {
		account.AllocationCryptocurrency = *r.AllocationCryptocurrency
	}
	if r.AllocationCash != nil {
		account.AllocationCash = *r.AllocationCash
	}
	if r.AllocationManagedFunds != nil {
		account.AllocationManagedFunds = *r.AllocationManagedFunds
	}
	if r.AllocationOther != nil {
		account.AllocationOther = *r.AllocationOther
	}
	if r.ShortTermTaxRate != nil {
		account.ShortTermTaxRate = *r.ShortTermTaxRate
	}
	if r.LongTermTaxRate != nil {
		account.LongTermTaxRate = *r.LongTermTaxRate
	}
}

// AccountOutput represents an account in API responses
type AccountOutput struct {
	ID   string      `json:"id"`
	User *UserOutput `json:"user"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`

	Salary        float64 `json:"salary"`
	EoyCashGoal   float64 `json:"eoy_cash_goal"`
	EmergencyFund float64 `json:"emergency_fund"`

	AllocationIntensity      int     `json:"allocation_intensity"`
	AllocationEtfs           float64 `json:"allocation_etfs"`
	AllocationStocks         float64 `json:"allocation_stocks"`
	AllocationCryptocurrency float64 `json:"allocation_cryptocurrency"`
	AllocationCash           float64 `json:"allocation_cash"`
	AllocationManagedFunds   float64 `json:"allocation_managed_funds"`
	AllocationOther          float64 `json:"allocation_other"`

	ShortTermTaxRate float64 `json:"short_term_tax_rate"`
	LongTermTaxRate  float64 `json:"long_term_tax_rate"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewAccountOutput converts a domain account to its API representation
func NewAccountOutput(account *domain.Account) *AccountOutput {
	return &AccountOutput{
		ID: account.ID.String(),
		User: &UserOutput{
			ID:    account.UserID.String(),
			Email: account.UserEmail,
		},
		FirstName:                account.FirstName,
		LastName:                 account.LastName,
		DateOfBirth:              account.DateOfBirth.Format(dateLayout),
		Salary:                   account.Salary,
		EoyCashGoal:              account.EoyCashGoal,
		EmergencyFund:            account.EmergencyFund,
		AllocationIntensity:      int(account.AllocationIntensity),
		AllocationEtfs:           account.AllocationEtfs,
		AllocationStocks:         account.AllocationStocks,
		AllocationCryptocurrency: account.AllocationCryptocurrency,
		AllocationCash:           account.AllocationCash,
		AllocationManagedFunds:   account.AllocationManagedFunds,
		AllocationOther:          account.AllocationOther,
		ShortTermTaxRate:         account.ShortTermTaxRate,
		LongTermTaxRate:          account.LongTermTaxRate,
		CreatedAt:                account.CreatedAt.Format(timeLayout),
		UpdatedAt:                account.UpdatedAt.Format(timeLayout),
	}
}
