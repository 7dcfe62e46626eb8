package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"networth/internal/domain"
	"networth/internal/middleware"
)

// UserService implements the user directory: registration, superuser
// creation and credential-based token issue/revoke.
type UserService struct {
	users    domain.UserRepository
	tokens   domain.AuthTokenRepository
	secret   string
	tokenTTL time.Duration
}

// NewUserService creates a new UserService
func NewUserService(users domain.UserRepository, tokens domain.AuthTokenRepository, secret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		users:    users,
		tokens:   tokens,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// FlagOverrides carries explicit role flags for superuser creation.
// Nil fields mean "use the default".
type FlagOverrides struct {
	IsStaff     *bool
	IsSuperuser *bool
}

// Register creates a regular user. The raw password is hashed and never
// stored or returned.
func (s *UserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return s.createUser(ctx, email, password, false, false)
}

// CreateSuperuser creates a staff superuser. Explicitly passing
// is_staff=false or is_superuser=false is a contradiction and rejected.
func (s *UserService) CreateSuperuser(ctx context.Context, email, password string, overrides FlagOverrides) (*domain.User, error) {
	if overrides.IsStaff != nil && !*overrides.IsStaff {
		return nil, domain.ErrSuperuserStaffFlag
	}
	if overrides.IsSuperuser != nil && !*overrides.IsSuperuser {
		return nil, domain.ErrSuperuserFlag
	}

	return s.createUser(ctx, email, password, true, true)
}

func (s *UserService) createUser(ctx context.Context, email, password string, isStaff, isSuperuser bool) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	// Fast-path duplicate check; the unique index on users.email is the
	// authoritative guard under concurrency.
	taken, err := s.users.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
		IsStaff:      isStaff,
		IsSuperuser:  isSuperuser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a new token. The jti is
// persisted so the token can be revoked server-side.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}

	tokenID := uuid.New()
	token, err := middleware.GenerateToken(s.secret, user.ID, tokenID, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	if err := s.tokens.Save(ctx, &domain.AuthToken{
		ID:        tokenID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenTTL),
		CreatedAt: time.Now(),
	}); err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the token behind the given jti
func (s *UserService) Logout(ctx context.Context, tokenID uuid.UUID) error {
	return s.tokens.Delete(ctx, tokenID)
}
