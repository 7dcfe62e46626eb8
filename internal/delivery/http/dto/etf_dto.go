package dto

import (
	"time"

	"networth/internal/domain"
)

// EtfCreateRequest is the creation payload. units_held and average_cost are
// deliberately not bindable: they are system-managed and start at zero.
type EtfCreateRequest struct {
	Ticker   string `json:"ticker" validate:"required"`
	FundName string `json:"fund_name" validate:"required"`
}

// EtfUpdateRequest is the PUT payload; the system-managed fields stay
// read-only on update as well.
type EtfUpdateRequest struct {
	Ticker   string `json:"ticker" validate:"required"`
	FundName string `json:"fund_name" validate:"required"`
}

// EtfPatchRequest is the PATCH payload; absent fields stay unchanged
type EtfPatchRequest struct {
	Ticker   *string `json:"ticker"`
	FundName *string `json:"fund_name"`
}

// Apply copies only the present fields onto the ETF
func (r *EtfPatchRequest) Apply(etf *domain.Etf) {
	if r.Ticker != nil {
		etf.Ticker = *r.Ticker
	}
	if r.FundName != nil {
		etf.FundName = *r.FundName
	}
}

// EtfOutput represents an ETF holding in API responses
type EtfOutput struct {
	ID          string      `json:"id"`
	User        *UserOutput `json:"user"`
	Ticker      string      `json:"ticker"`
	FundName    string      `json:"fund_name"`
	UnitsHeld   float64     `json:"units_held"`
	AverageCost float64     `json:"average_cost"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// NewEtfOutput converts a domain ETF to its API representation
func NewEtfOutput(etf *domain.Etf) *EtfOutput {
	return &EtfOutput{
		ID: etf.ID.String(),
		User: &UserOutput{
			ID:    etf.UserID.String(),
			Email: etf.UserEmail,
		},
		Ticker:      etf.Ticker,
		FundName:    etf.FundName,
		UnitsHeld:   etf.UnitsHeld,
		AverageCost: etf.AverageCost,
		CreatedAt:   etf.CreatedAt.Format(timeLayout),
		UpdatedAt:   etf.UpdatedAt.Format(timeLayout),
	}
}

// EtfTransactionRequest is the create/PUT payload for a transaction
type EtfTransactionRequest struct {
	Etf             string   `json:"etf" validate:"required,uuid"`
	TransactionType *int     `json:"transaction_type" validate:"required,gte=0,lte=1"`
	OrderDate       string   `json:"order_date" validate:"required,datetime=2006-01-02"`
	Units           *float64 `json:"units" validate:"required"`
	OrderCost       *float64 `json:"order_cost" validate:"required"`
	Brokerage       *float64 `json:"brokerage"`
}

// Apply copies the full payload onto the transaction, except the ETF
// reference, which the handler resolves and ownership-checks first.
func (r *EtfTransactionRequest) Apply(txn *domain.EtfTransaction) {
	txn.TransactionType = domain.TransactionType(*r.TransactionType)
	txn.OrderDate, _ = time.Parse(dateLayout, r.OrderDate)
	txn.Units = *r.Units
	txn.OrderCost = *r.OrderCost
	txn.Brokerage = r.Brokerage
}

// EtfTransactionPatchRequest is the PATCH payload; absent fields stay unchanged
type EtfTransactionPatchRequest struct {
	Etf             *string  `json:"etf" validate:"omitempty,uuid"`
	TransactionType *int     `json:"transaction_type" validate:"omitempty,gte=0,lte=1"`
	OrderDate       *string  `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	Units           *float64 `json:"units"`
	OrderCost       *float64 `json:"order_cost"`
	Brokerage       *float64 `json:"brokerage"`
}

// Apply copies only the present fields onto the transaction. The ETF
// reference is resolved by the handler, not here.
func (r *EtfTransactionPatchRequest) Apply(txn *domain.EtfTransaction) {
	if r.TransactionType != nil {
		txn.TransactionType = domain.TransactionType(*r.TransactionType)
	}
	if r.OrderDate != nil {
		txn.OrderDate, _ = time.Parse(dateLayout, *r.OrderDate)
	}
	if r.Units != nil {
		txn.Units = *r.Units
	}
	if r.OrderCost != nil {
		txn.OrderCost = *r.OrderCost
	}
	if r.Brokerage != nil {
		txn.Brokerage = r.Brokerage
	}
}

// EtfTransactionOutput represents a transaction in API responses
type EtfTransactionOutput struct {
	ID              string   `json:"id"`
	Etf             string   `json:"etf"`
	TransactionType int      `json:"transaction_type"`
	OrderDate       string   `json:"order_date"`
	Units           float64  `json:"units"`
	OrderCost       float64  `json:"order_cost"`
	Brokerage       *float64 `json:"brokerage"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// NewEtfTransactionOutput converts a domain transaction to its API representation
func NewEtfTransactionOutput(txn *domain.EtfTransaction) *EtfTransactionOutput {
	return &EtfTransactionOutput{
		ID:              txn.ID.String(),
		Etf:             txn.EtfID.String(),
		TransactionType: int(txn.TransactionType),
		OrderDate:       txn.OrderDate.Format(dateLayout),
		Units:           txn.Units,
		OrderCost:       txn.OrderCost,
		Brokerage:       txn.Brokerage,
		CreatedAt:       txn.CreatedAt.Format(timeLayout),
		UpdatedAt:       txn.UpdatedAt.Format(timeLayout),
	}
}

// NewEtfTransactionOutputs converts a list of transactions
func NewEtfTransactionOutputs(txns []*domain.EtfTransaction) []*EtfTransactionOutput {
	outputs := make([]*EtfTransactionOutput, 0, len(txns))
	for _, txn := range txns {
		outputs = append(outputs, NewEtfTransactionOutput(txn))
	}
	return outputs
}
