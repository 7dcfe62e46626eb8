package dto

import "networth/internal/domain"

// BankAccountRequest is the create/PUT payload for a bank account
type BankAccountRequest struct {
	Bank         string   `json:"bank" validate:"required"`
	AccountName  string   `json:"account_name" validate:"required"`
	Balance      *float64 `json:"balance" validate:"required"`
	InterestRate *float64 `json:"interest_rate" validate:"required,gte=0,lte=100"`
}

// Apply copies the full payload onto the bank account
func (r *BankAccountRequest) Apply(bankAccount *domain.BankAccount) {
	bankAccount.Bank = r.Bank
	bankAccount.AccountName = r.AccountName
	bankAccount.Balance = *r.Balance
	bankAccount.InterestRate = *r.InterestRate
}

// BankAccountPatchRequest is the PATCH payload; absent fields stay unchanged
type BankAccountPatchRequest struct {
	Bank         *string  `json:"bank"`
	AccountName  *string  `json:"account_name"`
	Balance      *float64 `json:"balance"`
	InterestRate *float64 `json:"interest_rate" validate:"omitempty,gte=0,lte=100"`
}

// Apply copies only the present fields onto the bank account
func (r *BankAccountPatchRequest) Apply(bankAccount *domain.BankAccount) {
	if r.Bank != nil {
		bankAccount.Bank = *r.Bank
	}
	if r.AccountName != nil {
		bankAccount.AccountName = *r.AccountName
	}
	if r.Balance != nil {
		bankAccount.Balance = *r.Balance
	}
	if r.InterestRate != nil {
		bankAccount.InterestRate = *r.InterestRate
	}
}

// BankAccountOutput represents a bank account in API responses
type BankAccountOutput struct {
	ID           string      `json:"id"`
	User         *UserOutput `json:"user"`
	Bank         string      `json:"bank"`
	AccountName  string      `json:"account_name"`
	Balance      float64     `json:"balance"`
	InterestRate float64     `json:"interest_rate"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// NewBankAccountOutput converts a domain bank account to its API representation
func NewBankAccountOutput(bankAccount *domain.BankAccount) *BankAccountOutput {
	return &BankAccountOutput{
		ID: bankAccount.ID.String(),
		User: &UserOutput{
			ID:    bankAccount.UserID.String(),
			Email: bankAccount.UserEmail,
		},
		Bank:         bankAccount.Bank,
		AccountName:  bankAccount.AccountName,
		Balance:      bankAccount.Balance,
		InterestRate: bankAccount.InterestRate,
		CreatedAt:    bankAccount.CreatedAt.Format(timeLayout),
		UpdatedAt:    bankAccount.UpdatedAt.Format(timeLayout),
	}
}

// NewBankAccountOutputs converts a list of bank accounts
func NewBankAccountOutputs(bankAccounts []*domain.BankAccount) []*BankAccountOutput {
	outputs := make([]*BankAccountOutput, 0, len(bankAccounts))
	for _, bankAccount := range bankAccounts {
		outputs = append(outputs, NewBankAccountOutput(bankAccount))
	}
	return outputs
}
