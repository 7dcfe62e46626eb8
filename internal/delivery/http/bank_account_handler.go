package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"networth/internal/delivery/http/dto"
	"networth/internal/domain"
	"networth/internal/middleware"
)

// BankAccountHandler handles the bank account resource
type BankAccountHandler struct {
	bankAccounts domain.BankAccountRepository
}

// NewBankAccountHandler creates a new BankAccountHandler
func NewBankAccountHandler(bankAccounts domain.BankAccountRepository) *BankAccountHandler {
	return &BankAccountHandler{bankAccounts: bankAccounts}
}

func filterFromQuery(c echo.Context) domain.BankAccountFilter {
	return domain.BankAccountFilter{
		Bank:        c.QueryParam("bank"),
		AccountName: c.QueryParam("account_name"),
		Search:      c.QueryParam("search"),
		Ordering:    c.QueryParam("ordering"),
	}
}

// List returns the caller's bank accounts, filtered and ordered
// GET /bank_accounts/
func (h *BankAccountHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	bankAccounts, err := h.bankAccounts.ListByUser(ctx, user.ID, filterFromQuery(c))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to list bank accounts", err)
	}

	return SuccessResponse(c, dto.NewBankAccountOutputs(bankAccounts))
}

// AdminList returns every bank account regardless of owner. Routed behind
// the staff middleware.
// GET /admin_bank_accounts/
func (h *BankAccountHandler) AdminList(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	bankAccounts, err := h.bankAccounts.ListAll(ctx, filterFromQuery(c))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to list bank accounts", err)
	}

	return SuccessResponse(c, dto.NewBankAccountOutputs(bankAccounts))
}

// Create creates a bank account for the caller
// POST /bank_accounts/
func (h *BankAccountHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.BankAccountRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	now := time.Now()
	bankAccount := &domain.BankAccount{
		ID:        uuid.New(),
		UserID:    user.ID,
		UserEmail: user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.Apply(bankAccount)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.bankAccounts.Create(ctx, bankAccount); err != nil {
		return InternalServerErrorResponse(c, "Failed to create bank account", err)
	}

	return CreatedResponse(c, dto.NewBankAccountOutput(bankAccount))
}

// Retrieve returns a single bank account
// GET /bank_accounts/:id/
func (h *BankAccountHandler) Retrieve(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	bankAccount, done, err := getOwned(c, user, h.bankAccounts.GetByID)
	if done {
		return err
	}

	return SuccessResponse(c, dto.NewBankAccountOutput(bankAccount))
}

// Update replaces a bank account
// PUT /bank_accounts/:id/
func (h *BankAccountHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	bankAccount, done, err := getOwned(c, user, h.bankAccounts.GetByID)
	if done {
		return err
	}

	var req dto.BankAccountRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	req.Apply(bankAccount)
	bankAccount.UpdatedAt = time.Now()

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.bankAccounts.Update(ctx, bankAccount); err != nil {
		return InternalServerErrorResponse(c, "Failed to update bank account", err)
	}

	return SuccessResponse(c, dto.NewBankAccountOutput(bankAccount))
}

// Patch partially updates a bank account
// PATCH /bank_accounts/:id/
func (h *BankAccountHandler) Patch(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	bankAccount, done, err := getOwned(c, user, h.bankAccounts.GetByID)
	if done {
		return err
	}

	var req dto.BankAccountPatchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	req.Apply(bankAccount)
	bankAccount.UpdatedAt = time.Now()

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.bankAccounts.Update(ctx, bankAccount); err != nil {
		return InternalServerErrorResponse(c, "Failed to update bank account", err)
	}

	return SuccessResponse(c, dto.NewBankAccountOutput(bankAccount))
}

// Delete removes a bank account
// DELETE /bank_accounts/:id/
func (h *BankAccountHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	bankAccount, done, err := getOwned(c, user, h.bankAccounts.GetByID)
	if done {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.bankAccounts.Delete(ctx, bankAccount.ID); err != nil {
		return InternalServerErrorResponse(c, "Failed to delete bank account", err)
	}

	return NoContentResponse(c)
}
