package dto

import "networth/internal/domain"

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse is the registration response. Only id and email are
// returned; the password is never echoed back.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ObtainTokenRequest represents the token-auth request payload. The username
// field carries the email, matching the classic token endpoint contract.
type ObtainTokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents the token-auth response
type TokenResponse struct {
	Token string `json:"token"`
}

// UserOutput is the owner rendering nested in resource responses
type UserOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewUserOutput builds the nested owner payload
func NewUserOutput(user *domain.User) *UserOutput {
	return &UserOutput{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}
