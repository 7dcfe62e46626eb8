package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"networth/internal/domain"
)

// uniqueViolation is the postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

// translateError converts pgx-level failures into domain sentinels so that
// callers can branch on errors.Is without importing pgx.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicate
	}
	return err
}
