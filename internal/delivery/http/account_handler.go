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

// AccountHandler handles the financial profile resource. A user owns at most
// one account, and only staff may delete one.
type AccountHandler struct {
	accounts domain.AccountRepository
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accounts domain.AccountRepository) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List returns the caller's accounts
// GET /accounts/
func (h *AccountHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	accounts, err := h.accounts.ListByUser(ctx, user.ID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to list accounts", err)
	}

	outputs := make([]*dto.AccountOutput, 0, len(accounts))
	for _, account := range accounts {
		outputs = append(outputs, dto.NewAccountOutput(account))
	}

	return SuccessResponse(c, outputs)
}

// Create creates the caller's account
// POST /accounts/
func (h *AccountHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.AccountRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// Fast-path check; the unique constraint on accounts.user_id decides races
	exists, err := h.accounts.ExistsForUser(ctx, user.ID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to check account", err)
	}
	if exists {
		return ForbiddenResponse(c, "An account already exists for this user.")
	}

	now := time.Now()
	account := &domain.Account{
		ID:        uuid.New(),
		UserID:    user.ID,
		UserEmail: user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.Apply(account)

	if err := h.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return ValidationErrorResponse(c, map[string]string{
				"user": "An account already exists for this user.",
			})
		}
		return InternalServerErrorResponse(c, "Failed to create account", err)
	}

	return CreatedResponse(c, dto.NewAccountOutput(account))
}

// Retrieve returns a single account
// GET /accounts/:id/
func (h *AccountHandler) Retrieve(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	account, done, err := getOwned(c, user, h.accounts.GetByID)
	if done {
		return err
	}

	return SuccessResponse(c, dto.NewAccountOutput(account))
}

// Update replaces an account
// PUT /accounts/:id/
func (h *AccountHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	account, done, err := getOwned(c, user, h.accounts.GetByID)
	if done {
		return err
	}

	var req dto.AccountRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	req.Apply(account)
	account.UpdatedAt = time.Now()

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.accounts.Update(ctx, account); err != nil {
		return InternalServerErrorResponse(c, "Failed to update account", err)
	}

	return SuccessResponse(c, dto.NewAccountOutput(account))
}

// Patch partially updates an account
// PATCH /accounts/:id/
func (h *AccountHandler) Patch(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	account, done, err := getOwned(c, user, h.accounts.GetByID)
	if done {
		return err
	}

	var req dto.AccountPatchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	req.Apply(account)
	account.UpdatedAt = time.Now()

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.accounts.Update(ctx, account); err != nil {
		return InternalServerErrorResponse(c, "Failed to update account", err)
	}

	return SuccessResponse(c, dto.NewAccountOutput(account))
}

// Delete removes an account. Ownership grants read and update, not delete:
// only staff or superusers may delete, even the owner gets 403.
// DELETE /accounts/:id/
func (h *AccountHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	account, done, err := getOwned(c, user, h.accounts.GetByID)
	if done {
		return err
	}

	if !user.IsStaff && !user.IsSuperuser {
		return ForbiddenResponse(c, "Only admins can delete accounts.")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.accounts.Delete(ctx, account.ID); err != nil {
		return InternalServerErrorResponse(c, "Failed to delete account", err)
	}

	return NoContentResponse(c)
}
