package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"networth/internal/delivery/http/dto"
	"networth/internal/domain"
	"networth/internal/middleware"
	"networth/internal/usecase"
)

// AuthHandler handles registration and token authentication
type AuthHandler struct {
	users *usecase.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users *usecase.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles user registration
// POST /register/
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrDuplicate):
			return ValidationErrorResponse(c, map[string]string{
				"email": "A user with this email already exists.",
			})
		case errors.Is(err, domain.ErrEmailRequired):
			return ValidationErrorResponse(c, map[string]string{
				"email": "This field is required.",
			})
		case errors.Is(err, domain.ErrPasswordRequired):
			return ValidationErrorResponse(c, map[string]string{
				"password": "This field is required.",
			})
		}
		return InternalServerErrorResponse(c, "Failed to register user", err)
	}

	return SuccessResponse(c, dto.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// ObtainToken exchanges credentials for an auth token
// POST /api-token-auth/
func (h *AuthHandler) ObtainToken(c echo.Context) error {
	var req dto.ObtainTokenRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if fields := ValidateRequest(req); fields != nil {
		return ValidationErrorResponse(c, fields)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, _, err := h.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return ValidationErrorResponse(c, map[string]string{
				"non_field_errors": "Unable to log in with provided credentials.",
			})
		}
		return InternalServerErrorResponse(c, "Failed to authenticate", err)
	}

	return SuccessResponse(c, dto.TokenResponse{Token: token})
}

// Logout revokes the current token
// POST /logout/
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenID, err := middleware.GetTokenID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.users.Logout(ctx, tokenID); err != nil {
		return InternalServerErrorResponse(c, "Failed to log out", err)
	}

	return NoContentResponse(c)
}
