// Package model defines the core domain models used throughout the application.
package model

import "time"

// CategorizationScope controls how far a categorization or tag command
// propagates beyond the source transaction.
type CategorizationScope string

const (
	// ScopeSingle affects only the source transaction.
	ScopeSingle CategorizationScope = "single"
	// ScopePattern affects the source plus all pattern-key matches.
	ScopePattern CategorizationScope = "pattern"
	// ScopeAll affects the source plus all transactions the broader
	// similarity matching deems related.
	ScopeAll CategorizationScope = "all"
)

// ValidScope reports whether s is one of the known scopes.
func ValidScope(s CategorizationScope) bool {
	switch s {
	case ScopeSingle, ScopePattern, ScopeAll:
		return true
	}
	return false
}

// CategorizeCommand requests that a transaction (and, depending on scope,
// its matches) be assigned a category.
type CategorizeCommand struct {
	TransactionID string
	CategoryID    string
	Scope         CategorizationScope
	ApplyToFuture bool // Emit a standing-rule descriptor alongside the result
}

// Validate returns every violated constraint, not just the first.
func (c CategorizeCommand) Validate() []string {
	var violations []string
	if c.TransactionID == "" {
		violations = append(violations, "transaction id must not be empty")
	}
	if c.CategoryID == "" {
		violations = append(violations, "category id must not be empty")
	}
	if !ValidScope(c.Scope) {
		violations = append(violations, "scope must be one of single, pattern, all")
	}
	return violations
}

// TagCommand requests that a tag be added to a transaction and, depending
// on scope, its matches.
type TagCommand struct {
	TransactionID string
	Tag           string
	Scope         CategorizationScope
}

// Validate returns every violated constraint, not just the first.
func (c TagCommand) Validate() []string {
	var violations []string
	if c.TransactionID == "" {
		violations = append(violations, "transaction id must not be empty")
	}
	if c.Tag == "" {
		violations = append(violations, "tag must not be empty")
	}
	if !ValidScope(c.Scope) {
		violations = append(violations, "scope must be one of single, pattern, all")
	}
	return violations
}

// RuleDescriptor describes a standing categorization rule requested via
// ApplyToFuture. Persisting the rule is the caller's concern.
type RuleDescriptor struct {
	CreatedAt       time.Time
	MerchantPattern string // Normalized merchant text the rule keys on
	CategoryID      string
}
