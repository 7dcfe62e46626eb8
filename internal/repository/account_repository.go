package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"networth/internal/domain"
)

// AccountRepositoryImpl implements the AccountRepository interface
type AccountRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

const accountColumns = `
	a.id, a.user_id, u.email,
	a.first_name, a.last_name, a.date_of_birth,
	a.salary, a.eoy_cash_goal, a.emergency_fund,
	a.allocation_intensity, a.allocation_etfs, a.allocation_stocks,
	a.allocation_cryptocurrency, a.allocation_cash, a.allocation_managed_funds,
	a.allocation_other, a.short_term_tax_rate, a.long_term_tax_rate,
	a.created_at, a.updated_at
`

func scanAccount(row interface{ Scan(dest ...any) error }) (*domain.Account, error) {
	account := &domain.Account{}
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.UserEmail,
		&account.FirstName,
		&account.LastName,
		&account.DateOfBirth,
		&account.Salary,
		&account.EoyCashGoal,
		&account.EmergencyFund,
		&account.AllocationIntensity,
		&account.AllocationEtfs,
		&account.AllocationStocks,
		&account.AllocationCryptocurrency,
		&account.AllocationCash,
		&account.AllocationManagedFunds,
		&account.AllocationOther,
		&account.ShortTermTaxRate,
		&account.LongTermTaxRate,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Create creates a new account
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (
			id, user_id, first_name, last_name, date_of_birth,
			salary, eoy_cash_goal, emergency_fund,
			allocation_intensity, allocation_etfs, allocation_stocks,
			allocation_cryptocurrency, allocation_cash, allocation_managed_funds,
			allocation_other, short_term_tax_rate, long_term_tax_rate,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)
	`

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.FirstName,
		account.LastName,
		account.DateOfBirth,
		account.Salary,
		account.EoyCashGoal,
		account.EmergencyFund,
		account.AllocationIntensity,
		account.AllocationEtfs,
		account.AllocationStocks,
		account.AllocationCryptocurrency,
		account.AllocationCash,
		account.AllocationManagedFunds,
		account.AllocationOther,
		account.ShortTermTaxRate,
		account.LongTermTaxRate,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create account: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get account by ID: %w", translateError(err))
	}

	return account, nil
}

// ListByUser retrieves all accounts owned by the user
func (r *AccountRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
		ORDER BY a.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", translateError(err))
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// ExistsForUser reports whether the user already owns an account
func (r *AccountRepositoryImpl) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE user_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", translateError(err))
	}

	return exists, nil
}

// Update updates an existing account
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET first_name = $1, last_name = $2, date_of_birth = $3,
		    salary = $4, eoy_cash_goal = $5, emergency_fund = $6,
		    allocation_intensity = $7, allocation_etfs = $8, allocation_stocks = $9,
		    allocation_cryptocurrency = $10, allocation_cash = $11,
		    allocation_managed_funds = $12, allocation_other = $13,
		    short_term_tax_rate = $14, long_term_tax_rate = $15,
		    updated_at = NOW()
		WHERE id = $16
	`

	_, err := r.db.Exec(ctx, query,
		account.FirstName,
		account.LastName,
		account.DateOfBirth,
		account.Salary,
		account.EoyCashGoal,
		account.EmergencyFund,
		account.AllocationIntensity,
		account.AllocationEtfs,
		account.AllocationStocks,
		account.AllocationCryptocurrency,
		account.AllocationCash,
		account.AllocationManagedFunds,
		account.AllocationOther,
		account.ShortTermTaxRate,
		account.LongTermTaxRate,
		account.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update account: %w", translateError(err))
	}

	return nil
}

// Delete deletes an account by ID
func (r *AccountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", translateError(err))
	}

	return nil
}
