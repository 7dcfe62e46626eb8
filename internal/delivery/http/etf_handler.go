package http

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"networth/internal/delivery/http/dto"
	"networth/internal/domain"
	"networth/internal/middleware"
)

// EtfHandler handles the ETF holding resource, including the nested
// transactions listing.
type EtfHandler struct {
	etfs domain.EtfRepository
	txns domain.EtfTransactionRepository
}

// NewEtfHandler creates a new EtfHandler
func NewEtfHandler(etfs domain.EtfRepository, txns domain.EtfTransactionRepository) *EtfHandler {
	return &EtfHandler{etfs: etfs, txns: txns}
}

// List returns the caller's ETFs
// GET /etfs/
func (h *EtfHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	etfs, err := h.etfs.ListByUser(ctx, user.ID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to list etfs", err)
	}

	outputs := make([]*dto.EtfOutput, 0, len(etfs))
	for _, etf := range etfs {
		outputs = append(outputs, dto.NewEtfOutput(etf))
	}

	return SuccessResponse(c, outputs)
}

// Create creates an ETF holding for the caller. units_held and average_cost
// start at zero no matter what the body carries.
// POST /etfs/
func (h *EtfHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.EtfCreateRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	taken, err := h.etfs.TickerExists(ctx, user.ID, req.Ticker, uuid.Nil)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to check ticker", err)
	}
	if taken {
		return ValidationErrorResponse(c, map[string]string{
			"ticker": "Ticker already exists for this user.",
		})
	}

	now := time.Now()
	etf := &domain.Etf{
		ID:          uuid.New(),
		UserID:      user.ID,
		UserEmail:   user.Email,
		Ticker:      req.Ticker,
		FundName:    req.FundName,
		UnitsHeld:   0,
		AverageCost: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.etfs.Create(ctx, etf); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return ValidationErrorResponse(c, map[string]string{
				"ticker": "Ticker already exists for this user.",
			})
		}
		return InternalServerErrorResponse(c, "Failed to create etf", err)
	}

	return CreatedResponse(c, dto.NewEtfOutput(etf))
}

// Retrieve returns a single ETF
// GET /etfs/:id/
func (h *EtfHandler) Retrieve(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	etf, done, err := getOwned(c, user, h.etfs.GetByID)
	if done {
		return err
	}

	return SuccessResponse(c, dto.NewEtfOutput(etf))
}

// Update replaces an ETF's client-writable fields
// PUT /etfs/:id/
func (h *EtfHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	etf, done, err := getOwned(c, user, h.etfs.GetByID)
	if done {
		return err
	}

	var req dto.EtfUpdateRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// Uniqueness is checked against the record's owner so a superuser edit
	// does not collide with their own holdings
	taken, err := h.etfs.TickerExists(ctx, etf.UserID, req.Ticker, etf.ID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to check ticker", err)
	}
	if taken {
		return ValidationErrorResponse(c, map[string]string{
			"ticker": "Ticker already exists for this user.",
		})
	}

	etf.Ticker = req.Ticker
	etf.FundName = req.FundName
	etf.UpdatedAt = time.Now()

	if err := h.etfs.Update(ctx, etf); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return ValidationErrorResponse(c, map[string]string{
				"ticker": "Ticker already exists for this user.",
			})
		}
		return InternalServerErrorResponse(c, "Failed to update etf", err)
	}

	return SuccessResponse(c, dto.NewEtfOutput(etf))
}

// Patch partially updates an ETF
// PATCH /etfs/:id/
func (h *EtfHandler) Patch(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	etf, done, err := getOwned(c, user, h.etfs.GetByID)
	if done {
		return err
	}

	var req dto.EtfPatchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if req.Ticker != nil {
		taken, err := h.etfs.TickerExists(ctx, etf.UserID, *req.Ticker, etf.ID)
		if err != nil {
			return InternalServerErrorResponse(c, "Failed to check ticker", err)
		}
		if taken {
			return ValidationErrorResponse(c, map[string]string{
				"ticker": "Ticker already exists for this user.",
			})
		}
	}

	req.Apply(etf)
	etf.UpdatedAt = time.Now()

	if err := h.etfs.Update(ctx, etf); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return ValidationErrorResponse(c, map[string]string{
				"ticker": "Ticker already exists for this user.",
			})
		}
		return InternalServerErrorResponse(c, "Failed to update etf", err)
	}

	return SuccessResponse(c, dto.NewEtfOutput(etf))
}

// Delete removes an ETF and, via cascade, its transactions
// DELETE /etfs/:id/
func (h *EtfHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	etf, done, err := getOwned(c, user, h.etfs.GetByID)
	if done {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.etfs.Delete(ctx, etf.ID); err != nil {
		return InternalServerErrorResponse(c, "Failed to delete etf", err)
	}

	return NoContentResponse(c)
}

// Transactions lists the transactions of one ETF. The query is scoped to the
// caller's holdings first, so a foreign ETF id simply matches nothing and the
// result is an empty list.
// GET /etfs/:id/transactions/
func (h *EtfHandler) Transactions(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	etfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NotFoundResponse(c, "Not found.")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	txns, err := h.txns.ListByEtf(ctx, etfID, user.ID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to list etf transactions", err)
	}

	return SuccessResponse(c, dto.NewEtfTransactionOutputs(txns))
}
