package pattern

import (
	"context"

	"github.com/pennyflow/pennyflow/internal/model"
)

// Suggestion proposes expanding a categorization to similar transactions.
// It is advisory only; no mutation happens until the caller issues a
// scoped command.
type Suggestion struct {
	PatternKey        string
	PatternLabel      string
	Scope             model.CategorizationScope
	MatchCount        int
	SameCategoryCount int // Matches already carrying the source's category
}

// Suggester generates "apply to similar" prompts by counting strict
// pattern matches and their category agreement.
type Suggester struct {
	matcher Matcher
}

// NewSuggester creates a suggester backed by the given matcher.
func NewSuggester(matcher Matcher) *Suggester {
	return &Suggester{matcher: matcher}
}

// Suggest returns a suggestion describing the candidate scope expansion for
// txn, or nil when nothing else matches. It always succeeds.
func (s *Suggester) Suggest(ctx context.Context, txn model.Transaction, candidates []model.Transaction) []Suggestion {
	matches := s.matcher.FindMatches(ctx, txn, candidates)
	if len(matches) == 0 {
		return nil
	}

	agree := 0
	for _, m := range matches {
		if m.CategoryID != "" && m.CategoryID == txn.CategoryID {
			agree++
		}
	}

	return []Suggestion{{
		PatternKey:        BuildKey(txn),
		PatternLabel:      Label(txn),
		Scope:             model.ScopePattern,
		MatchCount:        len(matches),
		SameCategoryCount: agree,
	}}
}

// FuzzyVariants returns candidates whose normalized merchant is at or above
// the similarity threshold against the source's merchant. Used for payee
// display/dedup, not for scope expansion.
func FuzzyVariants(source model.Transaction, candidates []model.Transaction, threshold float64) []model.Transaction {
	merchant := Normalize(source.MerchantName)

	var variants []model.Transaction
	for _, c := range candidates {
		if c.ID == source.ID {
			continue
		}
		if Similarity(merchant, Normalize(c.MerchantName)) >= threshold {
			variants = append(variants, c)
		}
	}
	return variants
}
