package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"networth/internal/domain"
)

// SuperannuationRepositoryImpl implements the SuperannuationRepository interface
type SuperannuationRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSuperannuationRepository creates a new SuperannuationRepository
func NewSuperannuationRepository(db *pgxpool.Pool) domain.SuperannuationRepository {
	return &SuperannuationRepositoryImpl{db: db}
}

const superannuationColumns = `
	s.id, s.user_id, u.email,
	s.provider, s.investment_plan, s.balance, s.market_returns, s.voluntary_contributions,
	s.created_at, s.updated_at
`

func scanSuperannuation(row interface{ Scan(dest ...any) error }) (*domain.Superannuation, error) {
	super := &domain.Superannuation{}
	err := row.Scan(
		&super.ID,
		&super.UserID,
		&super.UserEmail,
		&super.Provider,
		&super.InvestmentPlan,
		&super.Balance,
		&super.MarketReturns,
		&super.VoluntaryContributions,
		&super.CreatedAt,
		&super.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return super, nil
}

// Create creates a new superannuation record
func (r *SuperannuationRepositoryImpl) Create(ctx context.Context, super *domain.Superannuation) error {
	query := `
		INSERT INTO superannuations (
			id, user_id, provider, investment_plan, balance, market_returns,
			voluntary_contributions, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.Exec(ctx, query,
		super.ID,
		super.UserID,
		super.Provider,
		super.InvestmentPlan,
		super.Balance,
		super.MarketReturns,
		super.VoluntaryContributions,
		super.CreatedAt,
		super.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create superannuation: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a superannuation record by ID
func (r *SuperannuationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Superannuation, error) {
	query := `
		SELECT ` + superannuationColumns + `
		FROM superannuations s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	super, err := scanSuperannuation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get superannuation by ID: %w", translateError(err))
	}

	return super, nil
}

// ListByUser retrieves all superannuation records owned by the user
func (r *SuperannuationRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Superannuation, error) {
	query := `
		SELECT ` + superannuationColumns + `
		FROM superannuations s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1
		ORDER BY s.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query superannuations: %w", translateError(err))
	}
	defer rows.Close()

	var supers []*domain.Superannuation
	for rows.Next() {
		super, err := scanSuperannuation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan superannuation: %w", err)
		}
		supers = append(supers, super)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating superannuations: %w", err)
	}

	return supers, nil
}

// Update updates an existing superannuation record
func (r *SuperannuationRepositoryImpl) Update(ctx context.Context, super *domain.Superannuation) error {
	query := `
		UPDATE superannuations
		SET provider = $1, investment_plan = $2, balance = $3,
		    market_returns = $4, voluntary_contributions = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := r.db.Exec(ctx, query,
		super.Provider,
		super.InvestmentPlan,
		super.Balance,
		super.MarketReturns,
		super.VoluntaryContributions,
		super.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update superannuation: %w", translateError(err))
	}

	return nil
}

// Delete deletes a superannuation record by ID
func (r *SuperannuationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM superannuations WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete superannuation: %w", translateError(err))
	}

	return nil
}
