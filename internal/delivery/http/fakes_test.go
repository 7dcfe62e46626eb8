package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"networth/internal/domain"
)

// In-memory repository fakes backing the handler tests. They mirror the
// contracts of the postgres implementations, including duplicate detection
// and owner-scoped listing.

type fakeAccountRepo struct {
	accounts []*domain.Account
}

func (f *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	for _, a := range f.accounts {
		if a.UserID == account.UserID {
			return domain.ErrDuplicate
		}
	}
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccountRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range f.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) ExistsForUser(_ context.Context, userID uuid.UUID) (bool, error) {
	for _, a := range f.accounts {
		if a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *domain.Account) error {
	for i, a := range f.accounts {
		if a.ID == account.ID {
			f.accounts[i] = account
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, a := range f.accounts {
		if a.ID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeBankAccountRepo struct {
	bankAccounts []*domain.BankAccount
}

func (f *fakeBankAccountRepo) Create(_ context.Context, bankAccount *domain.BankAccount) error {
	f.bankAccounts = append(f.bankAccounts, bankAccount)
	return nil
}

func (f *fakeBankAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	for _, b := range f.bankAccounts {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func matchesFilter(b *domain.BankAccount, filter domain.BankAccountFilter) bool {
	switch {
	case filter.Bank != "":
		return strings.Contains(strings.ToLower(b.Bank), strings.ToLower(filter.Bank))
	case filter.AccountName != "":
		return strings.Contains(strings.ToLower(b.AccountName), strings.ToLower(filter.AccountName))
	case filter.Search != "":
		needle := strings.ToLower(filter.Search)
		return strings.Contains(strings.ToLower(b.Bank), needle) ||
			strings.Contains(strings.ToLower(b.AccountName), needle)
	}
	return true
}

func orderBankAccounts(out []*domain.BankAccount, ordering string) {
	sort.SliceStable(out, func(i, j int) bool {
		switch ordering {
		case "bank":
			return out[i].Bank < out[j].Bank
		case "account_name":
			return out[i].AccountName < out[j].AccountName
		case "balance":
			return out[i].Balance < out[j].Balance
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

func (f *fakeBankAccountRepo) ListByUser(_ context.Context, userID uuid.UUID, filter domain.BankAccountFilter) ([]*domain.BankAccount, error) {
	out := make([]*domain.BankAccount, 0)
	for _, b := range f.bankAccounts {
		if b.UserID == userID && matchesFilter(b, filter) {
			out = append(out, b)
		}
	}
	orderBankAccounts(out, filter.Ordering)
	return out, nil
}

func (f *fakeBankAccountRepo) ListAll(_ context.Context, filter domain.BankAccountFilter) ([]*domain.BankAccount, error) {
	out := make([]*domain.BankAccount, 0)
	for _, b := range f.bankAccounts {
		if matchesFilter(b, filter) {
			out = append(out, b)
		}
	}
	orderBankAccounts(out, filter.Ordering)
	return out, nil
}

func (f *fakeBankAccountRepo) Update(_ context.Context, bankAccount *domain.BankAccount) error {
	for i, b := range f.bankAccounts {
		if b.ID == bankAccount.ID {
			f.bankAccounts[i] = bankAccount
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBankAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, b := range f.bankAccounts {
		if b.ID == id {
			f.bankAccounts = append(f.bankAccounts[:i], f.bankAccounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeEtfRepo struct {
	etfs []*domain.Etf
}

func (f *fakeEtfRepo) Create(_ context.Context, etf *domain.Etf) error {
	for _, e := range f.etfs {
		if e.UserID == etf.UserID && e.Ticker == etf.Ticker {
			return domain.ErrDuplicate
		}
	}
	f.etfs = append(f.etfs, etf)
	return nil
}

func (f *fakeEtfRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Etf, error) {
	for _, e := range f.etfs {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEtfRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Etf, error) {
	var out []*domain.Etf
	for _, e := range f.etfs {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEtfRepo) TickerExists(_ context.Context, userID uuid.UUID, ticker string, excludeID uuid.UUID) (bool, error) {
	for _, e := range f.etfs {
		if e.UserID == userID && e.Ticker == ticker && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEtfRepo) Update(_ context.Context, etf *domain.Etf) error {
	for i, e := range f.etfs {
		if e.ID == etf.ID {
			f.etfs[i] = etf
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEtfRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range f.etfs {
		if e.ID == id {
			f.etfs = append(f.etfs[:i], f.etfs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeEtfTransactionRepo struct {
	txns []*domain.EtfTransaction
}

func (f *fakeEtfTransactionRepo) Create(_ context.Context, txn *domain.EtfTransaction) error {
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeEtfTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.EtfTransaction, error) {
	for _, t := range f.txns {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEtfTransactionRepo) ListByOwner(_ context.Context, userID uuid.UUID) ([]*domain.EtfTransaction, error) {
	out := make([]*domain.EtfTransaction, 0)
	for _, t := range f.txns {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeEtfTransactionRepo) ListByEtf(_ context.Context, etfID, userID uuid.UUID) ([]*domain.EtfTransaction, error) {
	out := make([]*domain.EtfTransaction, 0)
	for _, t := range f.txns {
		if t.EtfID == etfID && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeEtfTransactionRepo) Update(_ context.Context, txn *domain.EtfTransaction) error {
	for i, t := range f.txns {
		if t.ID == txn.ID {
			f.txns[i] = txn
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEtfTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range f.txns {
		if t.ID == id {
			f.txns = append(f.txns[:i], f.txns[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSuperannuationRepo struct {
	supers []*domain.Superannuation
}

func (f *fakeSuperannuationRepo) Create(_ context.Context, super *domain.Superannuation) error {
	f.supers = append(f.supers, super)
	return nil
}

func (f *fakeSuperannuationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Superannuation, error) {
	for _, s := range f.supers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSuperannuationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Superannuation, error) {
	out := make([]*domain.Superannuation, 0)
	for _, s := range f.supers {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSuperannuationRepo) Update(_ context.Context, super *domain.Superannuation) error {
	for i, s := range f.supers {
		if s.ID == super.ID {
			f.supers[i] = super
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeSuperannuationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, s := range f.supers {
		if s.ID == id {
			f.supers = append(f.supers[:i], f.supers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Test helpers

func testUser(email string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:        uuid.New(),
		Email:     email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testStaffUser(email string) *domain.User {
	user := testUser(email)
	user.IsStaff = true
	return user
}

func testSuperuser(email string) *domain.User {
	user := testUser(email)
	user.IsStaff = true
	user.IsSuperuser = true
	return user
}

// newTestContext builds an echo context carrying the given JSON body. The
// caller is attached the way the auth middleware would set it.
func newTestContext(t *testing.T, method, target string, body interface{}, caller *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	if caller != nil {
		c.Set("user", caller)
	}
	return c, rec
}

// decodeResponse unmarshals the response envelope
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
