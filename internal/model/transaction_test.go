package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_GenerateHash(t *testing.T) {
	base := Transaction{
		Date:         time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		MerchantName: "Netflix",
		AccountID:    "acct-1",
		Amount:       decimal.RequireFromString("-15.99"),
	}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, base.GenerateHash(), base.GenerateHash())
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		evening := base
		evening.Date = time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
		assert.Equal(t, base.GenerateHash(), evening.GenerateHash())
	})

	t.Run("amount changes the hash", func(t *testing.T) {
		other := base
		other.Amount = decimal.RequireFromString("-16.99")
		assert.NotEqual(t, base.GenerateHash(), other.GenerateHash())
	})

	t.Run("merchant changes the hash", func(t *testing.T) {
		other := base
		other.MerchantName = "Spotify"
		assert.NotEqual(t, base.GenerateHash(), other.GenerateHash())
	})
}

func TestTransaction_HasTag(t *testing.T) {
	txn := Transaction{Tags: []string{"subscription", "monthly"}}

	assert.True(t, txn.HasTag("subscription"))
	assert.False(t, txn.HasTag("annual"))

	var empty Transaction
	assert.False(t, empty.HasTag("anything"))
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindIncome))
	assert.True(t, ValidKind(KindExpense))
	assert.True(t, ValidKind(KindInvestment))
	assert.False(t, ValidKind(""))
	assert.False(t, ValidKind("transfer"))
}
