package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategoryKind(t *testing.T) {
	valid := []CategoryKind{
		CategoryKindIncome,
		CategoryKindEssential,
		CategoryKindDiscretionary,
		CategoryKindInvestment,
		CategoryKindDebtPayment,
		CategoryKindNoCompute,
	}
	for _, k := range valid {
		assert.True(t, ValidCategoryKind(k), "kind %q", k)
	}

	assert.False(t, ValidCategoryKind(""))
	assert.False(t, ValidCategoryKind("savings"))
	assert.False(t, ValidCategoryKind("Income"), "kinds are case-sensitive")
}
