package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pennyflow/pennyflow/internal/model"
)

const transactionColumns = `id, hash, date, merchant_name, description, amount, currency, kind, category_id, tags, account_id`

// FindByID returns the transaction with the given id, or nil when it does
// not exist.
func (s *SQLiteStorage) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`
	txn, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", id, err)
	}
	return txn, nil
}

// FindAll returns the full transaction collection in date order.
func (s *SQLiteStorage) FindAll(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// Save upserts a transaction by id.
func (s *SQLiteStorage) Save(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil || txn.ID == "" {
		return errors.New("transaction must have an id")
	}

	tags, err := json.Marshal(txn.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			hash = excluded.hash,
			date = excluded.date,
			merchant_name = excluded.merchant_name,
			description = excluded.description,
			amount = excluded.amount,
			currency = excluded.currency,
			kind = excluded.kind,
			category_id = excluded.category_id,
			tags = excluded.tags,
			account_id = excluded.account_id`

	_, err = s.db.ExecContext(ctx, query,
		txn.ID, txn.Hash, txn.Date, txn.MerchantName, txn.Description,
		txn.Amount.String(), txn.Currency, string(txn.Kind),
		nullString(txn.CategoryID), string(tags), txn.AccountID)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
	}
	return nil
}

// UpdateTags replaces a transaction's tag set wholesale.
func (s *SQLiteStorage) UpdateTags(ctx context.Context, id string, tags []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `UPDATE transactions SET tags = ? WHERE id = ?`, string(encoded), id)
	if err != nil {
		return fmt.Errorf("failed to update tags for %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check tag update for %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: no such row", id)
	}
	return nil
}

// InsertTransactions inserts new transactions, skipping any whose content
// hash already exists. Returns the number actually inserted.
func (s *SQLiteStorage) InsertTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range transactions {
		txn := &transactions[i]
		tags, err := json.Marshal(txn.Tags)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal tags: %w", err)
		}
		result, err := stmt.ExecContext(ctx,
			txn.ID, txn.Hash, txn.Date, txn.MerchantName, txn.Description,
			txn.Amount.String(), txn.Currency, string(txn.Kind),
			nullString(txn.CategoryID), string(tags), txn.AccountID)
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to check insert of %s: %w", txn.ID, err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit inserts: %w", err)
	}
	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn        model.Transaction
		amount     string
		kind       string
		categoryID sql.NullString
		tags       string
	)
	err := row.Scan(&txn.ID, &txn.Hash, &txn.Date, &txn.MerchantName, &txn.Description,
		&amount, &txn.Currency, &kind, &categoryID, &tags, &txn.AccountID)
	if err != nil {
		return nil, err
	}

	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	txn.Kind = model.TransactionKind(kind)
	txn.CategoryID = categoryID.String
	if err := json.Unmarshal([]byte(tags), &txn.Tags); err != nil {
		return nil, fmt.Errorf("invalid stored tags %q: %w", tags, err)
	}
	return &txn, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
