package dto

import "networth/internal/domain"

// SuperannuationRequest is the create/PUT payload for a superannuation record
type SuperannuationRequest struct {
	Provider               string   `json:"provider" validate:"required"`
	InvestmentPlan         string   `json:"investment_plan" validate:"required"`
	Balance                *float64 `json:"balance" validate:"required"`
	MarketReturns          *float64 `json:"market_returns" validate:"required"`
	VoluntaryContributions *float64 `json:"voluntary_contributions" validate:"required"`
}

// Apply copies the full payload onto the superannuation record
func (r *SuperannuationRequest) Apply(super *domain.Superannuation) {
	super.Provider = r.Provider
	super.InvestmentPlan = r.InvestmentPlan
	super.Balance = *r.Balance
	super.MarketReturns = *r.MarketReturns
	super.VoluntaryContributions = *r.VoluntaryContributions
}

// SuperannuationPatchRequest is the PATCH payload; absent fields stay unchanged
type SuperannuationPatchRequest struct {
	Provider               *string  `json:"provider"`
	InvestmentPlan         *string  `json:"investment_plan"`
	Balance                *float64 `json:"balance"`
	MarketReturns          *float64 `json:"market_returns"`
	VoluntaryContributions *float64 `json:"voluntary_contributions"`
}

// Apply copies only the present fields onto the superannuation record
func (r *SuperannuationPatchRequest) Apply(super *domain.Superannuation) {
	if r.Provider != nil {
		super.Provider = *r.Provider
	}
	if r.InvestmentPlan != nil {
		super.InvestmentPlan = *r.InvestmentPlan
	}
	if r.Balance != nil {
		super.Balance = *r.Balance
	}
	if r.MarketReturns != nil {
		super.MarketReturns = *r.MarketReturns
	}
	if r.VoluntaryContributions != nil {
		super.VoluntaryContributions = *r.VoluntaryContributions
	}
}

// SuperannuationOutput represents a superannuation record in API responses
type SuperannuationOutput struct {
	ID                     string      `json:"id"`
	User                   *UserOutput `json:"user"`
	Provider               string      `json:"provider"`
	InvestmentPlan         string      `json:"investment_plan"`
	Balance                float64     `json:"balance"`
	MarketReturns          float64     `json:"market_returns"`
	VoluntaryContributions float64     `json:"voluntary_contributions"`
	CreatedAt              string      `json:"created_at"`
	UpdatedAt              string      `json:"updated_at"`
}

// NewSuperannuationOutput converts a domain record to its API representation
func NewSuperannuationOutput(super *domain.Superannuation) *SuperannuationOutput {
	return &SuperannuationOutput{
		ID: super.ID.String(),
		User: &UserOutput{
			ID:    super.UserID.String(),
			Email: super.UserEmail,
		},
		Provider:               super.Provider,
		InvestmentPlan:         super.InvestmentPlan,
		Balance:                super.Balance,
		MarketReturns:          super.MarketReturns,
		VoluntaryContributions: super.VoluntaryContributions,
		CreatedAt:              super.CreatedAt.Format(timeLayout),
		UpdatedAt:              super.UpdatedAt.Format(timeLayout),
	}
}

// NewSuperannuationOutputs converts a list of records
func NewSuperannuationOutputs(supers []*domain.Superannuation) []*SuperannuationOutput {
	outputs := make([]*SuperannuationOutput, 0, len(supers))
	for _, super := range supers {
		outputs = append(outputs, NewSuperannuationOutput(super))
	}
	return outputs
}
