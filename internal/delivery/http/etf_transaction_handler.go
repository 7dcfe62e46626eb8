package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"networth/internal/delivery/http/dto"
	"networth/internal/domain"
	"networth/internal/middleware"
)

const invalidEtfMessage = "Invalid ETF selection. You can only create transactions for ETFs you own."

// EtfTransactionHandler handles the transaction resource. Ownership is
// transitive: a transaction is visible and editable through its ETF's owner.
type EtfTransactionHandler struct {
	etfs domain.EtfRepository
	txns domain.EtfTransactionRepository
}

// NewEtfTransactionHandler creates a new EtfTransactionHandler
func NewEtfTransactionHandler(etfs domain.EtfRepository, txns domain.EtfTransactionRepository) *EtfTransactionHandler {
	return &EtfTransactionHandler{etfs: etfs, txns: txns}
}

// resolveOwnEtf loads the referenced ETF and confirms the caller owns it.
// Cross-reference failures are validation errors, not 404s.
func (h *EtfTransactionHandler) resolveOwnEtf(ctx context.Context, user *domain.User, rawID string) (*domain.Etf, bool) {
	etfID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, false
	}

	etf, err := h.etfs.GetByID(ctx, etfID)
	if err != nil || etf.UserID != user.ID {
		return nil, false
	}

	return etf, true
}

// List returns all transactions whose ETF belongs to the caller
// GET /etf_transactions/
func (h *EtfTransactionHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	txns, err := h.txns.ListByOwner(ctx, user.ID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to list etf transactions", err)
	}

	return SuccessResponse(c, dto.NewEtfTransactionOutputs(txns))
}

// Create posts a transaction against one of the caller's ETFs
// POST /etf_transactions/
func (h *EtfTransactionHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.EtfTransactionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	etf, ok := h.resolveOwnEtf(ctx, user, req.Etf)
	if !ok {
		return ValidationErrorResponse(c, map[string]string{"etf": invalidEtfMessage})
	}

	now := time.Now()
	txn := &domain.EtfTransaction{
		ID:        uuid.New(),
		EtfID:     etf.ID,
		UserID:    etf.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.Apply(txn)

	if err := h.txns.Create(ctx, txn); err != nil {
		return InternalServerErrorResponse(c, "Failed to create etf transaction", err)
	}

	return CreatedResponse(c, dto.NewEtfTransactionOutput(txn))
}

// Retrieve returns a single transaction
// GET /etf_transactions/:id/
func (h *EtfTransactionHandler) Retrieve(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	txn, done, err := getOwned(c, user, h.txns.GetByID)
	if done {
		return err
	}

	return SuccessResponse(c, dto.NewEtfTransactionOutput(txn))
}

// Update replaces a transaction
// PUT /etf_transactions/:id/
func (h *EtfTransactionHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	txn, done, err := getOwned(c, user, h.txns.GetByID)
	if done {
		return err
	}

	var req dto.EtfTransactionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	etf, ok := h.resolveOwnEtf(ctx, user, req.Etf)
	if !ok {
		return ValidationErrorResponse(c, map[string]string{"etf": invalidEtfMessage})
	}

	txn.EtfID = etf.ID
	txn.UserID = etf.UserID
	req.Apply(txn)
	txn.UpdatedAt = time.Now()

	if err := h.txns.Update(ctx, txn); err != nil {
		return InternalServerErrorResponse(c, "Failed to update etf transaction", err)
	}

	return SuccessResponse(c, dto.NewEtfTransactionOutput(txn))
}

// Patch partially updates a transaction
// PATCH /etf_transactions/:id/
func (h *EtfTransactionHandler) Patch(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	txn, done, err := getOwned(c, user, h.txns.GetByID)
	if done {
		return err
	}

	var req dto.EtfTransactionPatchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if req.Etf != nil {
		etf, ok := h.resolveOwnEtf(ctx, user, *req.Etf)
		if !ok {
			return ValidationErrorResponse(c, map[string]string{"etf": invalidEtfMessage})
		}
		txn.EtfID = etf.ID
		txn.UserID = etf.UserID
	}

	req.Apply(txn)
	txn.UpdatedAt = time.Now()

	if err := h.txns.Update(ctx, txn); err != nil {
		return InternalServerErrorResponse(c, "Failed to update etf transaction", err)
	}

	return SuccessResponse(c, dto.NewEtfTransactionOutput(txn))
}

// Delete removes a transaction
// DELETE /etf_transactions/:id/
func (h *EtfTransactionHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	txn, done, err := getOwned(c, user, h.txns.GetByID)
	if done {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.txns.Delete(ctx, txn.ID); err != nil {
		return InternalServerErrorResponse(c, "Failed to delete etf transaction", err)
	}

	return NoContentResponse(c)
}
