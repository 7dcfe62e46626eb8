package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// EmailTaken reports whether a user with the email already exists
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// AuthTokenRepository defines the interface for issued-token records
type AuthTokenRepository interface {
	// Save persists a newly issued token
	Save(ctx context.Context, token *AuthToken) error

	// GetByID retrieves a token by its jti
	GetByID(ctx context.Context, id uuid.UUID) (*AuthToken, error)

	// Delete revokes a token
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes all tokens past their expiry, returning the count
	DeleteExpired(ctx context.Context) (int64, error)
}

// AccountRepository defines the interface for financial profile operations
type AccountRepository interface {
	// Create creates a new account
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// ListByUser retrieves all accounts owned by the user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error)

	// ExistsForUser reports whether the user already owns an account
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)

	// Update updates an existing account
	Update(ctx context.Context, account *Account) error

	// Delete deletes an account by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// BankAccountRepository defines the interface for bank account operations
type BankAccountRepository interface {
	// Create creates a new bank account
	Create(ctx context.Context, bankAccount *BankAccount) error

	// GetByID retrieves a bank account by ID
	GetByID(ctx context.Context, id uuid.UUID) (*BankAccount, error)

	// ListByUser retrieves the user's bank accounts, filtered and ordered
	ListByUser(ctx context.Context, userID uuid.UUID, filter BankAccountFilter) ([]*BankAccount, error)

	// ListAll retrieves every bank account regardless of owner (admin listing)
	ListAll(ctx context.Context, filter BankAccountFilter) ([]*BankAccount, error)

	// Update updates an existing bank account
	Update(ctx context.Context, bankAccount *BankAccount) error

	// Delete deletes a bank account by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// EtfRepository defines the interface for ETF holding operations
type EtfRepository interface {
	// Create creates a new ETF holding
	Create(ctx context.Context, etf *Etf) error

	// GetByID retrieves an ETF by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Etf, error)

	// ListByUser retrieves all ETFs owned by the user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Etf, error)

	// TickerExists reports whether the user already holds the ticker,
	// excluding the given ETF ID (uuid.Nil to exclude nothing)
	TickerExists(ctx context.Context, userID uuid.UUID, ticker string, excludeID uuid.UUID) (bool, error)

	// Update updates an existing ETF
	Update(ctx context.Context, etf *Etf) error

	// Delete deletes an ETF by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// EtfTransactionRepository defines the interface for ETF transaction operations
type EtfTransactionRepository interface {
	// Create creates a new transaction
	Create(ctx context.Context, txn *EtfTransaction) error

	// GetByID retrieves a transaction by ID, with the owning user resolved
	// through the referenced ETF
	GetByID(ctx context.Context, id uuid.UUID) (*EtfTransaction, error)

	// ListByOwner retrieves all transactions whose ETF belongs to the user
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*EtfTransaction, error)

	// ListByEtf retrieves the transactions of one ETF, still scoped to the owner
	ListByEtf(ctx context.Context, etfID, userID uuid.UUID) ([]*EtfTransaction, error)

	// Update updates an existing transaction
	Update(ctx context.Context, txn *EtfTransaction) error

	// Delete deletes a transaction by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// SuperannuationRepository defines the interface for superannuation operations
type SuperannuationRepository interface {
	// Create creates a new superannuation record
	Create(ctx context.Context, super *Superannuation) error

	// GetByID retrieves a superannuation record by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Superannuation, error)

	// ListByUser retrieves all superannuation records owned by the user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Superannuation, error)

	// Update updates an existing superannuation record
	Update(ctx context.Context, super *Superannuation) error

	// Delete deletes a superannuation record by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
