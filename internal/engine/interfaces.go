// Package engine applies scoped categorization and tagging commands across
// matching transactions.
package engine

import (
	"context"

	"github.com/pennyflow/pennyflow/internal/model"
)

// TransactionRepository is the persistence capability set the engine
// consumes. The concrete storage is injected; the engine never assumes how
// transactions are stored.
type TransactionRepository interface {
	// FindByID returns nil with no error when the transaction does not exist.
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	// FindAll returns the full transaction collection. No pagination
	// contract is assumed.
	FindAll(ctx context.Context) ([]model.Transaction, error)
	// Save upserts a transaction by id.
	Save(ctx context.Context, txn *model.Transaction) error
	// UpdateTags replaces a transaction's tag set wholesale.
	UpdateTags(ctx context.Context, id string, tags []string) error
}

// CategoryRepository resolves category references.
type CategoryRepository interface {
	// FindCategoryByID returns nil with no error when the category does
	// not exist.
	FindCategoryByID(ctx context.Context, id string) (*model.Category, error)
}
