package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"networth/internal/domain"
)

// EtfTransactionRepositoryImpl implements the EtfTransactionRepository interface
type EtfTransactionRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewEtfTransactionRepository creates a new EtfTransactionRepository
func NewEtfTransactionRepository(db *pgxpool.Pool) domain.EtfTransactionRepository {
	return &EtfTransactionRepositoryImpl{db: db}
}

// Every read joins through etfs so the owning user travels with the row.
const etfTransactionColumns = `
	t.id, t.etf_id, e.user_id,
	t.transaction_type, t.order_date, t.units, t.order_cost, t.brokerage,
	t.created_at, t.updated_at
`

func scanEtfTransaction(row interface{ Scan(dest ...any) error }) (*domain.EtfTransaction, error) {
	txn := &domain.EtfTransaction{}
	err := row.Scan(
		&txn.ID,
		&txn.EtfID,
		&txn.UserID,
		&txn.TransactionType,
		&txn.OrderDate,
		&txn.Units,
		&txn.OrderCost,
		&txn.Brokerage,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Create creates a new transaction
func (r *EtfTransactionRepositoryImpl) Create(ctx context.Context, txn *domain.EtfTransaction) error {
	query := `
		INSERT INTO etf_transactions (
			id, etf_id, transaction_type, order_date, units, order_cost, brokerage,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.Exec(ctx, query,
		txn.ID,
		txn.EtfID,
		txn.TransactionType,
		txn.OrderDate,
		txn.Units,
		txn.OrderCost,
		txn.Brokerage,
		txn.CreatedAt,
		txn.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create etf transaction: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a transaction by ID, with the owning user resolved
// through the referenced ETF
func (r *EtfTransactionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.EtfTransaction, error) {
	query := `
		SELECT ` + etfTransactionColumns + `
		FROM etf_transactions t
		JOIN etfs e ON e.id = t.etf_id
		WHERE t.id = $1
	`

	txn, err := scanEtfTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get etf transaction by ID: %w", translateError(err))
	}

	return txn, nil
}

// ListByOwner retrieves all transactions whose ETF belongs to the user
func (r *EtfTransactionRepositoryImpl) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.EtfTransaction, error) {
	query := `
		SELECT ` + etfTransactionColumns + `
		FROM etf_transactions t
		JOIN etfs e ON e.id = t.etf_id
		WHERE e.user_id = $1
		ORDER BY t.order_date ASC, t.created_at ASC
	`

	return r.list(ctx, query, userID)
}

// ListByEtf retrieves the transactions of one ETF, still scoped to the owner.
// A foreign etfID matches nothing and yields an empty result.
func (r *EtfTransactionRepositoryImpl) ListByEtf(ctx context.Context, etfID, userID uuid.UUID) ([]*domain.EtfTransaction, error) {
	query := `
		SELECT ` + etfTransactionColumns + `
		FROM etf_transactions t
		JOIN etfs e ON e.id = t.etf_id
		WHERE e.user_id = $1 AND t.etf_id = $2
		ORDER BY t.order_date ASC, t.created_at ASC
	`

	return r.list(ctx, query, userID, etfID)
}

func (r *EtfTransactionRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*domain.EtfTransaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query etf transactions: %w", translateError(err))
	}
	defer rows.Close()

	var txns []*domain.EtfTransaction
	for rows.Next() {
		txn, err := scanEtfTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan etf transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating etf transactions: %w", err)
	}

	return txns, nil
}

// Update updates an existing transaction
func (r *EtfTransactionRepositoryImpl) Update(ctx context.Context, txn *domain.EtfTransaction) error {
	query := `
		UPDATE etf_transactions
		SET etf_id = $1, transaction_type = $2, order_date = $3,
		    units = $4, order_cost = $5, brokerage = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := r.db.Exec(ctx, query,
		txn.EtfID,
		txn.TransactionType,
		txn.OrderDate,
		txn.Units,
		txn.OrderCost,
		txn.Brokerage,
		txn.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update etf transaction: %w", translateError(err))
	}

	return nil
}

// Delete deletes a transaction by ID
func (r *EtfTransactionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM etf_transactions WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete etf transaction: %w", translateError(err))
	}

	return nil
}
