package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies the direction of money movement.
type TransactionKind string

const (
	// KindIncome represents money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense represents money going out.
	KindExpense TransactionKind = "expense"
	// KindInvestment represents transfers into investment positions.
	KindInvestment TransactionKind = "investment"
)

// ValidKind reports whether k is one of the known transaction kinds.
func ValidKind(k TransactionKind) bool {
	switch k {
	case KindIncome, KindExpense, KindInvestment:
		return true
	}
	return false
}

// Transaction represents a single ledger entry from import or manual entry.
// CategoryID and Tags are the only fields this subsystem mutates.
type Transaction struct {
	Date         time.Time
	ID           string
	MerchantName string // Free-text payee name
	Description  string // Optional free-text detail
	AccountID    string
	Hash         string // Content hash for duplicate-import detection
	Currency     string
	CategoryID   string // Empty when uncategorized
	Tags         []string
	Amount       decimal.Decimal
	Kind         TransactionKind
}

// GenerateHash creates a content hash for duplicate-import detection.
// This is independent of the pattern key used for categorization matching.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount.StringFixed(2),
		t.MerchantName,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// HasTag reports whether the transaction already carries the given tag.
func (t *Transaction) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}
