package http

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"networth/internal/domain"
)

// requestContext bounds a handler's datastore work, matching the per-request
// timeout used throughout the API.
func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// getOwned parses the :id param, loads the record and applies the ownership
// gate. A foreign record is reported exactly like a missing one so item
// endpoints never leak existence. When done is true the response has already
// been written and the handler must return err as-is.
func getOwned[T domain.Owned](c echo.Context, user *domain.User, get func(context.Context, uuid.UUID) (T, error)) (record T, done bool, err error) {
	var zero T

	id, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return zero, true, NotFoundResponse(c, "Not found.")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	record, getErr := get(ctx, id)
	if getErr != nil {
		if errors.Is(getErr, domain.ErrNotFound) {
			return zero, true, NotFoundResponse(c, "Not found.")
		}
		return zero, true, InternalServerErrorResponse(c, "Failed to load record", getErr)
	}

	if !domain.IsOwnerOrSuperuser(user, record.OwnerID()) {
		return zero, true, NotFoundResponse(c, "Not found.")
	}

	return record, false, nil
}
