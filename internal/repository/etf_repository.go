package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"networth/internal/domain"
)

// EtfRepositoryImpl implements the EtfRepository interface
type EtfRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewEtfRepository creates a new EtfRepository
func NewEtfRepository(db *pgxpool.Pool) domain.EtfRepository {
	return &EtfRepositoryImpl{db: db}
}

const etfColumns = `
	e.id, e.user_id, u.email,
	e.ticker, e.fund_name, e.units_held, e.average_cost,
	e.created_at, e.updated_at
`

func scanEtf(row interface{ Scan(dest ...any) error }) (*domain.Etf, error) {
	etf := &domain.Etf{}
	err := row.Scan(
		&etf.ID,
		&etf.UserID,
		&etf.UserEmail,
		&etf.Ticker,
		&etf.FundName,
		&etf.UnitsHeld,
		&etf.AverageCost,
		&etf.CreatedAt,
		&etf.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return etf, nil
}

// Create creates a new ETF holding
func (r *EtfRepositoryImpl) Create(ctx context.Context, etf *domain.Etf) error {
	query := `
		INSERT INTO etfs (
			id, user_id, ticker, fund_name, units_held, average_cost, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.Exec(ctx, query,
		etf.ID,
		etf.UserID,
		etf.Ticker,
		etf.FundName,
		etf.UnitsHeld,
		etf.AverageCost,
		etf.CreatedAt,
		etf.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create etf: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves an ETF by ID
func (r *EtfRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Etf, error) {
	query := `
		SELECT ` + etfColumns + `
		FROM etfs e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	etf, err := scanEtf(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get etf by ID: %w", translateError(err))
	}

	return etf, nil
}

// ListByUser retrieves all ETFs owned by the user
func (r *EtfRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Etf, error) {
	query := `
		SELECT ` + etfColumns + `
		FROM etfs e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
		ORDER BY e.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query etfs: %w", translateError(err))
	}
	defer rows.Close()

	var etfs []*domain.Etf
	for rows.Next() {
		etf, err := scanEtf(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan etf: %w", err)
		}
		etfs = append(etfs, etf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating etfs: %w", err)
	}

	return etfs, nil
}

// TickerExists reports whether the user already holds the ticker. The check
// is case-sensitive and scoped to the one user, matching the unique index.
func (r *EtfRepositoryImpl) TickerExists(ctx context.Context, userID uuid.UUID, ticker string, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM etfs WHERE user_id = $1 AND ticker = $2 AND id <> $3
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, ticker, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ticker: %w", translateError(err))
	}

	return exists, nil
}

// Update updates an existing ETF
func (r *EtfRepositoryImpl) Update(ctx context.Context, etf *domain.Etf) error {
	query := `
		UPDATE etfs
		SET ticker = $1, fund_name = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, etf.Ticker, etf.FundName, etf.ID)
	if err != nil {
		return fmt.Errorf("failed to update etf: %w", translateError(err))
	}

	return nil
}

// Delete deletes an ETF by ID
func (r *EtfRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM etfs WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete etf: %w", translateError(err))
	}

	return nil
}
