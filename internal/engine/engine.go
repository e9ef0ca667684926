package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/pattern"
)

// CategorizeResult is the outcome of a successful categorize command.
// AppliedCount counts the primary transaction plus every successfully
// mutated match; a lower-than-expected count is the only signal of partial
// failure during expansion.
type CategorizeResult struct {
	Transaction  model.Transaction
	CreatedRule  *model.RuleDescriptor
	Suggestions  []pattern.Suggestion
	AppliedCount int
}

// TagResult is the outcome of a successful tag command.
type TagResult struct {
	Transaction  model.Transaction
	AffectedIDs  []string
	AppliedCount int
}

// Engine orchestrates scoped categorization and tagging. All collaborators
// are injected; the engine holds no global state.
type Engine struct {
	transactions TransactionRepository
	categories   CategoryRepository
	suggester    *pattern.Suggester
}

// New creates an engine over the given repositories.
func New(transactions TransactionRepository, categories CategoryRepository) *Engine {
	return &Engine{
		transactions: transactions,
		categories:   categories,
		suggester:    pattern.NewSuggester(pattern.KeyMatcher{}),
	}
}

// Categorize validates the command, assigns the category to the source
// transaction, and for scope "pattern" or "all" propagates the assignment
// to every match. Validation and resolution failures abort with no
// mutation; a primary save failure aborts the whole command; secondary
// failures only reduce AppliedCount.
func (e *Engine) Categorize(ctx context.Context, cmd model.CategorizeCommand) (*CategorizeResult, error) {
	if violations := cmd.Validate(); len(violations) > 0 {
		return nil, common.NewValidationError(violations)
	}

	txn, err := e.transactions.FindByID(ctx, cmd.TransactionID)
	if err != nil {
		return nil, common.NewPersistenceError("find transaction", err)
	}
	if txn == nil {
		return nil, &common.NotFoundError{Entity: "transaction", ID: cmd.TransactionID}
	}

	category, err := e.categories.FindCategoryByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, common.NewPersistenceError("find category", err)
	}
	if category == nil {
		return nil, &common.NotFoundError{Entity: "category", ID: cmd.CategoryID}
	}

	txn.CategoryID = category.ID
	if err := e.transactions.Save(ctx, txn); err != nil {
		return nil, common.NewPersistenceError("save transaction", err)
	}

	result := &CategorizeResult{
		Transaction:  *txn,
		AppliedCount: 1,
	}

	if cmd.Scope != model.ScopeSingle {
		collection := e.expandCategory(ctx, txn, category.ID, cmd.Scope, result)
		result.Suggestions = e.suggester.Suggest(ctx, *txn, collection)
	}

	if cmd.ApplyToFuture {
		result.CreatedRule = &model.RuleDescriptor{
			CreatedAt:       time.Now(),
			MerchantPattern: pattern.Normalize(txn.MerchantName),
			CategoryID:      category.ID,
		}
	}

	return result, nil
}

// expandCategory loads the full collection, applies the category to every
// match, and returns the collection with successful mutations reflected so
// suggestions see post-mutation state. Expansion is best effort: any
// failure here is logged and reduces the count, never fails the command.
func (e *Engine) expandCategory(ctx context.Context, source *model.Transaction, categoryID string, scope model.CategorizationScope, result *CategorizeResult) []model.Transaction {
	collection, err := e.transactions.FindAll(ctx)
	if err != nil {
		slog.Warn("skipping scope expansion: could not load transactions",
			"transaction", source.ID, "scope", scope, "error", err)
		return nil
	}

	matches := pattern.ForScope(scope).FindMatches(ctx, *source, collection)
	applied := make(map[string]bool, len(matches))

	for i := range matches {
		if ctx.Err() != nil {
			break
		}
		matches[i].CategoryID = categoryID
		if err := e.transactions.Save(ctx, &matches[i]); err != nil {
			slog.Warn("skipping matched transaction: save failed",
				"transaction", matches[i].ID, "error", err)
			continue
		}
		applied[matches[i].ID] = true
		result.AppliedCount++
	}

	for i := range collection {
		if applied[collection[i].ID] {
			collection[i].CategoryID = categoryID
		}
	}
	return collection
}

// Tag validates the command and merges the tag into the source
// transaction's tag set, propagating to matches for scope "pattern" or
// "all". The merge is an idempotent union: a tag already present is never
// duplicated, and re-tagging is not an error.
func (e *Engine) Tag(ctx context.Context, cmd model.TagCommand) (*TagResult, error) {
	if violations := cmd.Validate(); len(violations) > 0 {
		return nil, common.NewValidationError(violations)
	}

	txn, err := e.transactions.FindByID(ctx, cmd.TransactionID)
	if err != nil {
		return nil, common.NewPersistenceError("find transaction", err)
	}
	if txn == nil {
		return nil, &common.NotFoundError{Entity: "transaction", ID: cmd.TransactionID}
	}

	if !txn.HasTag(cmd.Tag) {
		txn.Tags = append(txn.Tags, cmd.Tag)
	}
	if err := e.transactions.UpdateTags(ctx, txn.ID, txn.Tags); err != nil {
		return nil, common.NewPersistenceError("update tags", err)
	}

	result := &TagResult{
		Transaction:  *txn,
		AffectedIDs:  []string{txn.ID},
		AppliedCount: 1,
	}

	if cmd.Scope != model.ScopeSingle {
		e.expandTag(ctx, txn, cmd.Tag, cmd.Scope, result)
	}

	return result, nil
}

// expandTag merges the tag into every match's tag set. Best effort, same
// policy as expandCategory.
func (e *Engine) expandTag(ctx context.Context, source *model.Transaction, tag string, scope model.CategorizationScope, result *TagResult) {
	collection, err := e.transactions.FindAll(ctx)
	if err != nil {
		slog.Warn("skipping scope expansion: could not load transactions",
			"transaction", source.ID, "scope", scope, "error", err)
		return
	}

	matches := pattern.ForScope(scope).FindMatches(ctx, *source, collection)
	for i := range matches {
		if ctx.Err() != nil {
			break
		}
		tags := matches[i].Tags
		if !matches[i].HasTag(tag) {
			tags = append(tags, tag)
		}
		if err := e.transactions.UpdateTags(ctx, matches[i].ID, tags); err != nil {
			slog.Warn("skipping matched transaction: tag update failed",
				"transaction", matches[i].ID, "error", err)
			continue
		}
		result.AffectedIDs = append(result.AffectedIDs, matches[i].ID)
		result.AppliedCount++
	}
}

// GetSuggestions computes "apply to similar" suggestions for a transaction
// without mutating anything. An empty result means nothing else matches.
func (e *Engine) GetSuggestions(ctx context.Context, transactionID string) ([]pattern.Suggestion, error) {
	if transactionID == "" {
		return nil, common.NewValidationError([]string{"transaction id must not be empty"})
	}

	txn, err := e.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return nil, common.NewPersistenceError("find transaction", err)
	}
	if txn == nil {
		return nil, &common.NotFoundError{Entity: "transaction", ID: transactionID}
	}

	collection, err := e.transactions.FindAll(ctx)
	if err != nil {
		return nil, common.NewPersistenceError("load transactions", err)
	}

	return e.suggester.Suggest(ctx, *txn, collection), nil
}
