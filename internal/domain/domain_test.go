package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllocationIntensity(t *testing.T) {
	tests := []struct {
		value AllocationIntensity
		valid bool
		label string
	}{
		{IntensityLight, true, "Light"},
		{IntensityNormal, true, "Normal"},
		{IntensityAggressive, true, "Aggressive"},
		{AllocationIntensity(3), false, "Unknown"},
		{AllocationIntensity(-1), false, "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.value.Valid())
		assert.Equal(t, tt.label, tt.value.String())
	}
}

func TestTransactionType(t *testing.T) {
	tests := []struct {
		value TransactionType
		valid bool
		label string
	}{
		{TransactionBuy, true, "Buy"},
		{TransactionSell, true, "Sell"},
		{TransactionType(2), false, "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.value.Valid())
		assert.Equal(t, tt.label, tt.value.String())
	}
}

func TestIsOwnerOrSuperuser(t *testing.T) {
	owner := &User{ID: uuid.New()}
	admin := &User{ID: uuid.New(), IsSuperuser: true}
	staff := &User{ID: uuid.New(), IsStaff: true}

	assert.True(t, IsOwnerOrSuperuser(owner, owner.ID))
	assert.False(t, IsOwnerOrSuperuser(owner, uuid.New()))
	assert.True(t, IsOwnerOrSuperuser(admin, uuid.New()))
	assert.False(t, IsOwnerOrSuperuser(staff, uuid.New()))
	assert.False(t, IsOwnerOrSuperuser(nil, owner.ID))
}

func TestAuthTokenExpired(t *testing.T) {
	token := &AuthToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, token.Expired(time.Now()))
	assert.True(t, token.Expired(time.Now().Add(2*time.Hour)))
}
