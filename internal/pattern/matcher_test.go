package pattern

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pennyflow/pennyflow/internal/model"
)

func txn(id, merchant, desc string, kind model.TransactionKind, amount string) model.Transaction {
	return model.Transaction{
		ID:           id,
		MerchantName: merchant,
		Description:  desc,
		Kind:         kind,
		Amount:       decimal.RequireFromString(amount),
	}
}

func matchIDs(matches []model.Transaction) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestKeyMatcher_FindMatches(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		source     model.Transaction
		candidates []model.Transaction
		wantIDs    []string
	}{
		{
			name:   "same merchant with digit variants match",
			source: txn("t1", "Netflix", "Sub 001", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t2", "Netflix", "Sub 002", model.KindExpense, "-15.99"),
				txn("t3", "Netflix", "Sub 003", model.KindExpense, "-17.99"),
			},
			wantIDs: []string{"t2", "t3"},
		},
		{
			name:   "never matches itself",
			source: txn("t1", "Netflix", "Sub 001", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t1", "Netflix", "Sub 001", model.KindExpense, "-15.99"),
			},
			wantIDs: []string{},
		},
		{
			name:   "different kind never matches",
			source: txn("t1", "Netflix", "Sub 001", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t2", "Netflix", "Sub 002", model.KindIncome, "15.99"),
			},
			wantIDs: []string{},
		},
		{
			name:   "different merchant does not match",
			source: txn("t1", "Netflix", "Sub 001", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t2", "Spotify", "Sub 001", model.KindExpense, "-15.99"),
			},
			wantIDs: []string{},
		},
		{
			name:   "different description after digit stripping does not match",
			source: txn("t1", "Amazon", "Order 123", model.KindExpense, "-20.00"),
			candidates: []model.Transaction{
				txn("t2", "Amazon", "Refund 456", model.KindExpense, "-20.00"),
			},
			wantIDs: []string{},
		},
		{
			name:   "blank merchants group together",
			source: txn("t1", "", "", model.KindExpense, "-1.00"),
			candidates: []model.Transaction{
				txn("t2", "  ", "99", model.KindExpense, "-2.00"),
			},
			wantIDs: []string{"t2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := KeyMatcher{}.FindMatches(ctx, tt.source, tt.candidates)
			assert.ElementsMatch(t, tt.wantIDs, matchIDs(matches))
		})
	}
}

func TestLooseMatcher_FindMatches(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		source     model.Transaction
		candidates []model.Transaction
		wantIDs    []string
	}{
		{
			name:   "merchant substring matches",
			source: txn("t1", "Uber Eats", "", model.KindExpense, "-30.00"),
			candidates: []model.Transaction{
				txn("t2", "Uber", "", model.KindExpense, "-12.00"),
			},
			wantIDs: []string{"t2"},
		},
		{
			name:   "substring works in both directions",
			source: txn("t1", "Uber", "", model.KindExpense, "-12.00"),
			candidates: []model.Transaction{
				txn("t2", "Uber Eats", "", model.KindExpense, "-30.00"),
			},
			wantIDs: []string{"t2"},
		},
		{
			name:   "amount within a cent matches",
			source: txn("t1", "Netflix", "", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t2", "Totally Different", "", model.KindExpense, "-15.98"),
			},
			wantIDs: []string{"t2"},
		},
		{
			name:   "amount beyond a cent and unrelated merchant does not match",
			source: txn("t1", "Netflix", "", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t2", "Shell", "", model.KindExpense, "-40.00"),
			},
			wantIDs: []string{},
		},
		{
			name:   "kind isolation still applies",
			source: txn("t1", "Netflix", "", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t2", "Netflix", "", model.KindIncome, "-15.99"),
			},
			wantIDs: []string{},
		},
		{
			name:   "self exclusion still applies",
			source: txn("t1", "Netflix", "", model.KindExpense, "-15.99"),
			candidates: []model.Transaction{
				txn("t1", "Netflix", "", model.KindExpense, "-15.99"),
			},
			wantIDs: []string{},
		},
		{
			name:   "empty merchants do not substring-match everything",
			source: txn("t1", "", "", model.KindExpense, "-5.00"),
			candidates: []model.Transaction{
				txn("t2", "Shell", "", model.KindExpense, "-40.00"),
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := LooseMatcher{}.FindMatches(ctx, tt.source, tt.candidates)
			assert.ElementsMatch(t, tt.wantIDs, matchIDs(matches))
		})
	}
}

func TestForScope(t *testing.T) {
	assert.IsType(t, KeyMatcher{}, ForScope(model.ScopePattern))
	assert.IsType(t, LooseMatcher{}, ForScope(model.ScopeAll))
}

func TestLooseMatcher_SupersetOfStrict(t *testing.T) {
	ctx := context.Background()
	source := txn("t1", "Netflix", "Sub 001", model.KindExpense, "-15.99")
	candidates := []model.Transaction{
		txn("t2", "Netflix", "Sub 002", model.KindExpense, "-17.25"),
		txn("t3", "Netflix Intl", "Other", model.KindExpense, "-3.00"),
		txn("t4", "Shell", "", model.KindExpense, "-50.00"),
	}

	strict := matchIDs(KeyMatcher{}.FindMatches(ctx, source, candidates))
	loose := matchIDs(LooseMatcher{}.FindMatches(ctx, source, candidates))

	assert.Subset(t, loose, strict)
}
