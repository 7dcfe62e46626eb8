package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"networth/internal/delivery/http/dto"
	"networth/internal/domain"
	"networth/internal/middleware"
)

// SuperannuationHandler handles the superannuation resource
type SuperannuationHandler struct {
	supers domain.SuperannuationRepository
}

// NewSuperannuationHandler creates a new SuperannuationHandler
func NewSuperannuationHandler(supers domain.SuperannuationRepository) *SuperannuationHandler {
	return &SuperannuationHandler{supers: supers}
}

// List returns the caller's superannuation records
// GET /superannuations/
func (h *SuperannuationHandler) List(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	supers, err := h.supers.ListByUser(ctx, user.ID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to list superannuations", err)
	}

	return SuccessResponse(c, dto.NewSuperannuationOutputs(supers))
}

// Create creates a superannuation record for the caller
// POST /superannuations/
func (h *SuperannuationHandler) Create(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.SuperannuationRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	now := time.Now()
	super := &domain.Superannuation{
		ID:        uuid.New(),
		UserID:    user.ID,
		UserEmail: user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.Apply(super)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.supers.Create(ctx, super); err != nil {
		return InternalServerErrorResponse(c, "Failed to create superannuation", err)
	}

	return CreatedResponse(c, dto.NewSuperannuationOutput(super))
}

// Retrieve returns a single superannuation record
// GET /superannuations/:id/
func (h *SuperannuationHandler) Retrieve(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	super, done, err := getOwned(c, user, h.supers.GetByID)
	if done {
		return err
	}

	return SuccessResponse(c, dto.NewSuperannuationOutput(super))
}

// Update replaces a superannuation record
// PUT /superannuations/:id/
func (h *SuperannuationHandler) Update(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	super, done, err := getOwned(c, user, h.supers.GetByID)
	if done {
		return err
	}

	var req dto.SuperannuationRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	req.Apply(super)
	super.UpdatedAt = time.Now()

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.supers.Update(ctx, super); err != nil {
		return InternalServerErrorResponse(c, "Failed to update superannuation", err)
	}

	return SuccessResponse(c, dto.NewSuperannuationOutput(super))
}

// Patch partially updates a superannuation record
// PATCH /superannuations/:id/
func (h *SuperannuationHandler) Patch(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	super, done, err := getOwned(c, user, h.supers.GetByID)
	if done {
		return err
	}

	var req dto.SuperannuationPatchRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	req.Apply(super)
	super.UpdatedAt = time.Now()

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.supers.Update(ctx, super); err != nil {
		return InternalServerErrorResponse(c, "Failed to update superannuation", err)
	}

	return SuccessResponse(c, dto.NewSuperannuationOutput(super))
}

// Delete removes a superannuation record
// DELETE /superannuations/:id/
func (h *SuperannuationHandler) Delete(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	super, done, err := getOwned(c, user, h.supers.GetByID)
	if done {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.supers.Delete(ctx, super.ID); err != nil {
		return InternalServerErrorResponse(c, "Failed to delete superannuation", err)
	}

	return NoContentResponse(c)
}
