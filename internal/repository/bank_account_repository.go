package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"networth/internal/domain"
)

// BankAccountRepositoryImpl implements the BankAccountRepository interface
type BankAccountRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewBankAccountRepository creates a new BankAccountRepository
func NewBankAccountRepository(db *pgxpool.Pool) domain.BankAccountRepository {
	return &BankAccountRepositoryImpl{db: db}
}

const bankAccountColumns = `
	b.id, b.user_id, u.email,
	b.bank, b.account_name, b.balance, b.interest_rate,
	b.created_at, b.updated_at
`

// orderingColumns whitelists the client-selectable sort columns.
var orderingColumns = map[string]string{
	"bank":         "b.bank",
	"account_name": "b.account_name",
	"balance":      "b.balance",
}

func scanBankAccount(row interface{ Scan(dest ...any) error }) (*domain.BankAccount, error) {
	bankAccount := &domain.BankAccount{}
	err := row.Scan(
		&bankAccount.ID,
		&bankAccount.UserID,
		&bankAccount.UserEmail,
		&bankAccount.Bank,
		&bankAccount.AccountName,
		&bankAccount.Balance,
		&bankAccount.InterestRate,
		&bankAccount.CreatedAt,
		&bankAccount.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bankAccount, nil
}

// Create creates a new bank account
func (r *BankAccountRepositoryImpl) Create(ctx context.Context, bankAccount *domain.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (
			id, user_id, bank, account_name, balance, interest_rate, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.Exec(ctx, query,
		bankAccount.ID,
		bankAccount.UserID,
		bankAccount.Bank,
		bankAccount.AccountName,
		bankAccount.Balance,
		bankAccount.InterestRate,
		bankAccount.CreatedAt,
		bankAccount.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create bank account: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a bank account by ID
func (r *BankAccountRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	query := `
		SELECT ` + bankAccountColumns + `
		FROM bank_accounts b
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1
	`

	bankAccount, err := scanBankAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get bank account by ID: %w", translateError(err))
	}

	return bankAccount, nil
}

// ListByUser retrieves the user's bank accounts, filtered and ordered
func (r *BankAccountRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.BankAccountFilter) ([]*domain.BankAccount, error) {
	query := `
		SELECT ` + bankAccountColumns + `
		FROM bank_accounts b
		JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1
	`
	args := []any{userID}

	query, args = applyFilter(query, args, filter)
	query += orderingClause(filter.Ordering)

	return r.list(ctx, query, args)
}

// ListAll retrieves every bank account regardless of owner (admin listing)
func (r *BankAccountRepositoryImpl) ListAll(ctx context.Context, filter domain.BankAccountFilter) ([]*domain.BankAccount, error) {
	query := `
		SELECT ` + bankAccountColumns + `
		FROM bank_accounts b
		JOIN users u ON u.id = b.user_id
		WHERE TRUE
	`
	var args []any

	query, args = applyFilter(query, args, filter)
	query += orderingClause(filter.Ordering)

	return r.list(ctx, query, args)
}

// applyFilter appends at most one substring predicate. Bank wins over
// account name, which wins over the cross-field search.
func applyFilter(query string, args []any, filter domain.BankAccountFilter) (string, []any) {
	switch {
	case filter.Bank != "":
		args = append(args, "%"+filter.Bank+"%")
		query += fmt.Sprintf(" AND b.bank ILIKE $%d", len(args))
	case filter.AccountName != "":
		args = append(args, "%"+filter.AccountName+"%")
		query += fmt.Sprintf(" AND b.account_name ILIKE $%d", len(args))
	case filter.Search != "":
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (b.bank ILIKE $%d OR b.account_name ILIKE $%d)", len(args), len(args))
	}
	return query, args
}

func orderingClause(ordering string) string {
	if col, ok := orderingColumns[ordering]; ok {
		return " ORDER BY " + col + " ASC"
	}
	return " ORDER BY b.created_at ASC"
}

func (r *BankAccountRepositoryImpl) list(ctx context.Context, query string, args []any) ([]*domain.BankAccount, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", translateError(err))
	}
	defer rows.Close()

	var bankAccounts []*domain.BankAccount
	for rows.Next() {
		bankAccount, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account: %w", err)
		}
		bankAccounts = append(bankAccounts, bankAccount)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank accounts: %w", err)
	}

	return bankAccounts, nil
}

// Update updates an existing bank account
func (r *BankAccountRepositoryImpl) Update(ctx context.Context, bankAccount *domain.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET bank = $1, account_name = $2, balance = $3, interest_rate = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query,
		bankAccount.Bank,
		bankAccount.AccountName,
		bankAccount.Balance,
		bankAccount.InterestRate,
		bankAccount.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update bank account: %w", translateError(err))
	}

	return nil
}

// Delete deletes a bank account by ID
func (r *BankAccountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bank_accounts WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bank account: %w", translateError(err))
	}

	return nil
}
