package pattern

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/pennyflow/internal/model"
)

// Matcher reports which candidate transactions belong with a source
// transaction. Implementations never match a candidate against itself and
// never match across transaction kinds. No ordering is imposed on results
// beyond the iteration order of the candidates.
type Matcher interface {
	FindMatches(ctx context.Context, source model.Transaction, candidates []model.Transaction) []model.Transaction
}

// KeyMatcher matches on exact pattern-key equality. This is the strict
// strategy backing scope "pattern".
type KeyMatcher struct{}

// FindMatches returns every candidate sharing the source's pattern key.
func (KeyMatcher) FindMatches(_ context.Context, source model.Transaction, candidates []model.Transaction) []model.Transaction {
	key := BuildKey(source)

	var matches []model.Transaction
	for _, c := range candidates {
		if c.ID == source.ID || c.Kind != source.Kind {
			continue
		}
		if BuildKey(c) == key {
			matches = append(matches, c)
		}
	}
	return matches
}

// amountTolerance is the loose-match cutoff for "same amount".
var amountTolerance = decimal.New(1, -2) // 0.01

// LooseMatcher accepts everything KeyMatcher accepts, plus candidates whose
// normalized merchant contains (or is contained in) the source's, and
// candidates whose amount is within 0.01 of the source's. This is the
// broader strategy backing scope "all".
type LooseMatcher struct{}

// FindMatches returns every candidate related to the source under the
// loose heuristics.
func (LooseMatcher) FindMatches(_ context.Context, source model.Transaction, candidates []model.Transaction) []model.Transaction {
	key := BuildKey(source)
	merchant := Normalize(source.MerchantName)

	var matches []model.Transaction
	for _, c := range candidates {
		if c.ID == source.ID || c.Kind != source.Kind {
			continue
		}
		if BuildKey(c) == key || merchantRelated(merchant, Normalize(c.MerchantName)) || amountClose(source.Amount, c.Amount) {
			matches = append(matches, c)
		}
	}
	return matches
}

// merchantRelated reports substring containment in either direction.
// Empty merchants are never related; the degenerate empty pattern key
// already groups those.
func merchantRelated(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func amountClose(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(amountTolerance)
}

// ForScope returns the matcher backing a categorization scope. Scope
// "single" performs no expansion and has no matcher.
func ForScope(scope model.CategorizationScope) Matcher {
	if scope == model.ScopeAll {
		return LooseMatcher{}
	}
	return KeyMatcher{}
}
