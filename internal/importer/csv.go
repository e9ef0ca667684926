// Package importer parses transaction CSV files into ledger entries,
// deduplicating against previously imported content.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/pennyflow/internal/model"
)

// Store is the persistence surface the importer needs.
type Store interface {
	InsertTransactions(ctx context.Context, transactions []model.Transaction) (int, error)
}

// Result summarizes one import run.
type Result struct {
	Parsed   int
	Imported int
	Skipped  int // Duplicates detected by content hash
}

// record is the expected CSV row shape.
type record struct {
	Date        string `csv:"date"`
	Merchant    string `csv:"merchant"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Currency    string `csv:"currency"`
	Kind        string `csv:"kind"`
	Account     string `csv:"account"`
}

// Importer converts CSV rows into transactions and stores them.
type Importer struct {
	store    Store
	progress func(current, total int)
}

// New creates an importer over the given store.
func New(store Store) *Importer {
	return &Importer{store: store}
}

// WithProgress registers a callback invoked after each parsed row.
func (i *Importer) WithProgress(fn func(current, total int)) *Importer {
	i.progress = fn
	return i
}

// Import parses r and inserts all well-formed rows, skipping rows whose
// content hash is already present. A malformed row fails the whole import
// with its line number; nothing is inserted in that case.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	var rows []record
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	transactions := make([]model.Transaction, 0, len(rows))
	for n, row := range rows {
		txn, err := i.toTransaction(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err) // +2: header plus 1-based
		}
		transactions = append(transactions, *txn)
		if i.progress != nil {
			i.progress(n+1, len(rows))
		}
	}

	inserted, err := i.store.InsertTransactions(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to store transactions: %w", err)
	}

	result := &Result{
		Parsed:   len(transactions),
		Imported: inserted,
		Skipped:  len(transactions) - inserted,
	}
	slog.Info("import complete", "parsed", result.Parsed, "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func (i *Importer) toTransaction(row record) (*model.Transaction, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(row.Date))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", row.Date, err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", row.Amount, err)
	}

	kind := model.TransactionKind(strings.ToLower(strings.TrimSpace(row.Kind)))
	if row.Kind == "" {
		// Unlabeled rows fall back to sign-based classification
		if amount.IsNegative() {
			kind = model.KindExpense
		} else {
			kind = model.KindIncome
		}
	}
	if !model.ValidKind(kind) {
		return nil, fmt.Errorf("invalid kind %q", row.Kind)
	}

	currency := strings.ToUpper(strings.TrimSpace(row.Currency))
	if currency == "" {
		currency = "USD"
	}

	txn := &model.Transaction{
		ID:           uuid.NewString(),
		Date:         date,
		MerchantName: strings.TrimSpace(row.Merchant),
		Description:  strings.TrimSpace(row.Description),
		Amount:       amount,
		Currency:     currency,
		Kind:         kind,
		AccountID:    strings.TrimSpace(row.Account),
		Tags:         []string{},
	}
	txn.Hash = txn.GenerateHash()
	return txn, nil
}
