package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"networth/internal/domain"
)

// AuthTokenRepositoryImpl implements the AuthTokenRepository interface
type AuthTokenRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAuthTokenRepository creates a new AuthTokenRepository
func NewAuthTokenRepository(db *pgxpool.Pool) domain.AuthTokenRepository {
	return &AuthTokenRepositoryImpl{db: db}
}

// Save persists a newly issued token
func (r *AuthTokenRepositoryImpl) Save(ctx context.Context, token *domain.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (id, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, token.ID, token.UserID, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save auth token: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a token by its jti
func (r *AuthTokenRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	query := `
		SELECT id, user_id, expires_at, created_at
		FROM auth_tokens
		WHERE id = $1
	`

	token := &domain.AuthToken{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&token.ID,
		&token.UserID,
		&token.ExpiresAt,
		&token.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get auth token: %w", translateError(err))
	}

	return token, nil
}

// Delete revokes a token
func (r *AuthTokenRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM auth_tokens WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete auth token: %w", translateError(err))
	}

	return nil
}

// DeleteExpired removes all tokens past their expiry, returning the count
func (r *AuthTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM auth_tokens WHERE expires_at < NOW()`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired auth tokens: %w", translateError(err))
	}

	return tag.RowsAffected(), nil
}
