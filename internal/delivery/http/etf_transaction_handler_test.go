package http

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"networth/internal/delivery/http/dto"
	"networth/internal/domain"
)

func validTransactionRequest(etfID uuid.UUID) dto.EtfTransactionRequest {
	return dto.EtfTransactionRequest{
		Etf:             etfID.String(),
		TransactionType: intPtr(int(domain.TransactionBuy)),
		OrderDate:       "2024-03-01",
		Units:           floatPtr(10),
		OrderCost:       floatPtr(950),
	}
}

func TestEtfTransactionCreate(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	user := testUser("jordan@example.com")
	etf := seedEtf(etfs, user, "VAS")

	req := validTransactionRequest(etf.ID)
	req.Brokerage = floatPtr(9.50)

	c, rec := newTestContext(t, http.MethodPost, "/etf_transactions/", req, user)
	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeResponse(t, rec)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, etf.ID.String(), data["etf"])
	assert.Equal(t, "2024-03-01", data["order_date"])
	assert.Equal(t, 9.50, data["brokerage"])

	require.Len(t, txns.txns, 1)
	assert.Equal(t, user.ID, txns.txns[0].UserID)
}

func TestEtfTransactionCreateNilBrokerage(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	user := testUser("jordan@example.com")
	etf := seedEtf(etfs, user, "VAS")

	c, rec := newTestContext(t, http.MethodPost, "/etf_transactions/", validTransactionRequest(etf.ID), user)
	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, txns.txns, 1)
	assert.Nil(t, txns.txns[0].Brokerage)
}

func TestEtfTransactionCreateForeignEtfRejected(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	foreignEtf := seedEtf(etfs, testUser("other@example.com"), "VAS")

	tests := []struct {
		name   string
		caller *domain.User
	}{
		{"regular user cannot reference a foreign etf", testUser("jordan@example.com")},
		// Creation requires strict ownership, so even a superuser is rejected
		{"superuser cannot reference a foreign etf", testSuperuser("admin@example.com")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/etf_transactions/", validTransactionRequest(foreignEtf.ID), tt.caller)
			require.NoError(t, handler.Create(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			payload := decodeResponse(t, rec)
			fields := payload["error"].(map[string]interface{})
			assert.Equal(t, invalidEtfMessage, fields["etf"])
			assert.Empty(t, txns.txns)
		})
	}
}

func TestEtfTransactionCreateUnknownEtfRejected(t *testing.T) {
	handler := NewEtfTransactionHandler(&fakeEtfRepo{}, &fakeEtfTransactionRepo{})

	c, rec := newTestContext(t, http.MethodPost, "/etf_transactions/", validTransactionRequest(uuid.New()), testUser("jordan@example.com"))
	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decodeResponse(t, rec)["error"].(map[string]interface{})
	assert.Equal(t, invalidEtfMessage, fields["etf"])
}

func TestEtfTransactionCreateInvalidType(t *testing.T) {
	etfs := &fakeEtfRepo{}
	handler := NewEtfTransactionHandler(etfs, &fakeEtfTransactionRepo{})
	user := testUser("jordan@example.com")
	etf := seedEtf(etfs, user, "VAS")

	req := validTransactionRequest(etf.ID)
	req.TransactionType = intPtr(3)

	c, rec := newTestContext(t, http.MethodPost, "/etf_transactions/", req, user)
	require.NoError(t, handler.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decodeResponse(t, rec)["error"].(map[string]interface{})
	assert.Contains(t, fields, "transaction_type")
}

func TestEtfTransactionListScopedToOwner(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)

	owner := testUser("owner@example.com")
	other := testUser("other@example.com")
	seedTransaction(txns, seedEtf(etfs, owner, "VAS"))
	seedTransaction(txns, seedEtf(etfs, other, "VGS"))

	c, rec := newTestContext(t, http.MethodGet, "/etf_transactions/", nil, owner)
	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec)["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestEtfTransactionRetrieveForeignNotFound(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	txn := seedTransaction(txns, seedEtf(etfs, testUser("owner@example.com"), "VAS"))

	c, rec := newTestContext(t, http.MethodGet, "/etf_transactions/"+txn.ID.String()+"/", nil, testUser("other@example.com"))
	c.SetParamNames("id")
	c.SetParamValues(txn.ID.String())

	require.NoError(t, handler.Retrieve(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEtfTransactionUpdateMovesBetweenOwnEtfs(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	user := testUser("jordan@example.com")
	source := seedEtf(etfs, user, "VAS")
	target := seedEtf(etfs, user, "VGS")
	txn := seedTransaction(txns, source)

	req := validTransactionRequest(target.ID)
	req.TransactionType = intPtr(int(domain.TransactionSell))

	c, rec := newTestContext(t, http.MethodPut, "/etf_transactions/"+txn.ID.String()+"/", req, user)
	c.SetParamNames("id")
	c.SetParamValues(txn.ID.String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, target.ID, txn.EtfID)
	assert.Equal(t, domain.TransactionSell, txn.TransactionType)
}

func TestEtfTransactionUpdateForeignEtfRejected(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	user := testUser("jordan@example.com")
	own := seedEtf(etfs, user, "VAS")
	foreign := seedEtf(etfs, testUser("other@example.com"), "VGS")
	txn := seedTransaction(txns, own)

	c, rec := newTestContext(t, http.MethodPut, "/etf_transactions/"+txn.ID.String()+"/", validTransactionRequest(foreign.ID), user)
	c.SetParamNames("id")
	c.SetParamValues(txn.ID.String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, own.ID, txn.EtfID)
}

func TestEtfTransactionPatchWithoutEtf(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	user := testUser("jordan@example.com")
	txn := seedTransaction(txns, seedEtf(etfs, user, "VAS"))

	body := map[string]interface{}{"units": 25.5}
	c, rec := newTestContext(t, http.MethodPatch, "/etf_transactions/"+txn.ID.String()+"/", body, user)
	c.SetParamNames("id")
	c.SetParamValues(txn.ID.String())

	require.NoError(t, handler.Patch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25.5, txn.Units)
	assert.Equal(t, domain.TransactionBuy, txn.TransactionType)
}

func TestEtfTransactionDelete(t *testing.T) {
	etfs := &fakeEtfRepo{}
	txns := &fakeEtfTransactionRepo{}
	handler := NewEtfTransactionHandler(etfs, txns)
	user := testUser("jordan@example.com")
	txn := seedTransaction(txns, seedEtf(etfs, user, "VAS"))

	c, rec := newTestContext(t, http.MethodDelete, "/etf_transactions/"+txn.ID.String()+"/", nil, user)
	c.SetParamNames("id")
	c.SetParamValues(txn.ID.String())

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, txns.txns)
}
