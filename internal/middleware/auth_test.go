package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"networth/internal/domain"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

type fakeTokenRepo struct {
	tokens map[uuid.UUID]*domain.AuthToken
}

func (f *fakeTokenRepo) Save(_ context.Context, token *domain.AuthToken) error {
	f.tokens[token.ID] = token
	return nil
}

func (f *fakeTokenRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.AuthToken, error) {
	token, ok := f.tokens[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return token, nil
}

func (f *fakeTokenRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.tokens, id)
	return nil
}

func (f *fakeTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

const testSecret = "test-secret"

type authFixture struct {
	auth   *Authenticator
	users  *fakeUserRepo
	tokens *fakeTokenRepo
}

func newAuthFixture() *authFixture {
	users := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	tokens := &fakeTokenRepo{tokens: make(map[uuid.UUID]*domain.AuthToken)}
	return &authFixture{
		auth:   NewAuthenticator(testSecret, users, tokens),
		users:  users,
		tokens: tokens,
	}
}

// issueToken mints a signed token and stores its jti, mirroring login
func (f *authFixture) issueToken(t *testing.T, user *domain.User, ttl time.Duration) string {
	t.Helper()

	f.users.users[user.ID] = user

	tokenID := uuid.New()
	token, err := GenerateToken(testSecret, user.ID, tokenID, ttl)
	require.NoError(t, err)

	f.tokens.tokens[tokenID] = &domain.AuthToken{
		ID:        tokenID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}
	return token
}

func activeUser() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Email:    "jordan@example.com",
		IsActive: true,
	}
}

func invokeProtected(t *testing.T, auth *Authenticator, configure func(req *http.Request)) (echo.Context, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	if configure != nil {
		configure(req)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, auth.Middleware(next)(c)
}

func assertHTTPError(t *testing.T, err error, wantCode int) {
	t.Helper()

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, wantCode, httpErr.Code)
}

func TestMiddlewareValidToken(t *testing.T) {
	fixture := newAuthFixture()
	user := activeUser()
	token := fixture.issueToken(t, user, time.Hour)

	c, err := invokeProtected(t, fixture.auth, func(req *http.Request) {
		req.Header.Set("Authorization", "Token "+token)
	})
	require.NoError(t, err)

	got, err := GetUser(c)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = GetTokenID(c)
	assert.NoError(t, err)
}

func TestMiddlewareCookieFallback(t *testing.T) {
	fixture := newAuthFixture()
	token := fixture.issueToken(t, activeUser(), time.Hour)

	_, err := invokeProtected(t, fixture.auth, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	})
	assert.NoError(t, err)
}

func TestMiddlewareRejections(t *testing.T) {
	fixture := newAuthFixture()

	expiredToken := fixture.issueToken(t, activeUser(), -time.Hour)

	inactive := activeUser()
	inactive.IsActive = false
	inactiveToken := fixture.issueToken(t, inactive, time.Hour)

	valid := fixture.issueToken(t, activeUser(), time.Hour)

	foreignSignature, err := GenerateToken("other-secret", uuid.New(), uuid.New(), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Bearer " + valid},
		{"garbage token", "Token not.a.jwt"},
		{"foreign signature", "Token " + foreignSignature},
		{"expired token", "Token " + expiredToken},
		{"inactive user", "Token " + inactiveToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invokeProtected(t, fixture.auth, func(req *http.Request) {
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}
			})
			assertHTTPError(t, err, http.StatusUnauthorized)
		})
	}
}

func TestMiddlewareRevokedToken(t *testing.T) {
	fixture := newAuthFixture()
	token := fixture.issueToken(t, activeUser(), time.Hour)

	// Logout removes the jti row; the signature alone no longer authenticates
	for id := range fixture.tokens.tokens {
		delete(fixture.tokens.tokens, id)
	}

	_, err := invokeProtected(t, fixture.auth, func(req *http.Request) {
		req.Header.Set("Authorization", "Token "+token)
	})
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestRequireStaff(t *testing.T) {
	fixture := newAuthFixture()

	tests := []struct {
		name        string
		isStaff     bool
		isSuperuser bool
		wantErr     bool
	}{
		{"regular user forbidden", false, false, true},
		{"staff allowed", true, false, false},
		{"superuser allowed", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := activeUser()
			user.IsStaff = tt.isStaff
			user.IsSuperuser = tt.isSuperuser

			req := httptest.NewRequest(http.MethodGet, "/admin_bank_accounts/", nil)
			c := echo.New().NewContext(req, httptest.NewRecorder())
			c.Set("user", user)

			next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			err := fixture.auth.RequireStaff(next)(c)

			if tt.wantErr {
				assertHTTPError(t, err, http.StatusForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateTokenCarriesClaims(t *testing.T) {
	userID := uuid.New()
	tokenID := uuid.New()

	token, err := GenerateToken(testSecret, userID, tokenID, time.Hour)
	require.NoError(t, err)

	auth := &Authenticator{Secret: testSecret}
	claims, err := auth.parseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tokenID.String(), claims.ID)
}
