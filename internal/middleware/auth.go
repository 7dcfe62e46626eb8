package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"networth/internal/domain"
)

// TokenClaims represents the JWT token claims. The registered ID claim (jti)
// must match a live auth_tokens row or the token is treated as revoked.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed token for a user. tokenID becomes the jti.
func GenerateToken(secret string, userID, tokenID uuid.UUID, ttl time.Duration) (string, error) {
	claims := &TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Authenticator resolves the `Authorization: Token <t>` header (or cookie)
// to exactly one active user.
type Authenticator struct {
	Secret string
	Users  domain.UserRepository
	Tokens domain.AuthTokenRepository
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(secret string, users domain.UserRepository, tokens domain.AuthTokenRepository) *Authenticator {
	return &Authenticator{Secret: secret, Users: users, Tokens: tokens}
}

// Middleware validates the request token and sets the user in context
func (a *Authenticator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			// Try to get from cookie
			cookie, err := c.Cookie("token")
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication token")
			}
			authHeader = "Token " + cookie.Value
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Token" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
		}

		claims, err := a.parseClaims(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		tokenID, err := uuid.Parse(claims.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token claims")
		}

		ctx := c.Request().Context()

		// A missing row means the token was revoked via logout or swept
		stored, err := a.Tokens.GetByID(ctx, tokenID)
		if err != nil || stored.Expired(time.Now()) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		user, err := a.Users.GetByID(ctx, claims.UserID)
		if err != nil || !user.IsActive {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("user", user)
		c.Set("token_id", tokenID)

		return next(c)
	}
}

// RequireStaff rejects authenticated users without staff or superuser rights
func (a *Authenticator) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := GetUser(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found in context")
		}

		if !user.IsStaff && !user.IsSuperuser {
			return echo.NewHTTPError(http.StatusForbidden, "Staff access required")
		}

		return next(c)
	}
}

func (a *Authenticator) parseClaims(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// GetUser extracts the authenticated user from echo context
func GetUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok {
		return nil, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// GetTokenID extracts the current token's jti from echo context
func GetTokenID(c echo.Context) (uuid.UUID, error) {
	tokenID, ok := c.Get("token_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("token_id not found in context")
	}
	return tokenID, nil
}
