package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/model"
)

// fakeStore records inserted transactions and simulates hash-based
// deduplication.
type fakeStore struct {
	seen     map[string]bool
	inserted []model.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{seen: make(map[string]bool)}
}

func (f *fakeStore) InsertTransactions(_ context.Context, transactions []model.Transaction) (int, error) {
	count := 0
	for _, txn := range transactions {
		if f.seen[txn.Hash] {
			continue
		}
		f.seen[txn.Hash] = true
		f.inserted = append(f.inserted, txn)
		count++
	}
	return count, nil
}

const sampleCSV = `date,merchant,description,amount,currency,kind,account
2024-01-15,Netflix,Sub 001,-15.99,USD,expense,acct-1
2024-01-16,Employer Inc,Salary,2500.00,USD,income,acct-1
2024-02-15,Netflix,Sub 002,-15.99,USD,expense,acct-1
`

func TestImporter_Import(t *testing.T) {
	store := newFakeStore()

	result, err := New(store).Import(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Parsed)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, store.inserted, 3)

	first := store.inserted[0]
	assert.Equal(t, "Netflix", first.MerchantName)
	assert.Equal(t, model.KindExpense, first.Kind)
	assert.Equal(t, "USD", first.Currency)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.Hash)
	assert.Equal(t, "2024-01-15", first.Date.Format("2006-01-02"))
}

func TestImporter_Import_SkipsDuplicates(t *testing.T) {
	store := newFakeStore()
	imp := New(store)
	ctx := context.Background()

	_, err := imp.Import(ctx, strings.NewReader(sampleCSV))
	require.NoError(t, err)

	result, err := imp.Import(ctx, strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Parsed)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 3, result.Skipped)
}

func TestImporter_Import_InfersKindFromSign(t *testing.T) {
	csv := `date,merchant,description,amount,currency,kind,account
2024-01-15,Mystery,,-9.50,USD,,acct-1
2024-01-16,Mystery,,9.50,USD,,acct-1
`
	store := newFakeStore()

	_, err := New(store).Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, store.inserted, 2)
	assert.Equal(t, model.KindExpense, store.inserted[0].Kind)
	assert.Equal(t, model.KindIncome, store.inserted[1].Kind)
}

func TestImporter_Import_MalformedRowFailsWithLineNumber(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "bad date",
			csv: `date,merchant,description,amount,currency,kind,account
15/01/2024,Netflix,,-15.99,USD,expense,acct-1
`,
		},
		{
			name: "bad amount",
			csv: `date,merchant,description,amount,currency,kind,account
2024-01-15,Netflix,,fifteen,USD,expense,acct-1
`,
		},
		{
			name: "bad kind",
			csv: `date,merchant,description,amount,currency,kind,account
2024-01-15,Netflix,,-15.99,USD,windfall,acct-1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			_, err := New(store).Import(context.Background(), strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "row 2")
			assert.Empty(t, store.inserted, "nothing may be inserted on a malformed file")
		})
	}
}

func TestImporter_Import_DefaultsCurrency(t *testing.T) {
	csv := `date,merchant,description,amount,currency,kind,account
2024-01-15,Netflix,,-15.99,,expense,acct-1
`
	store := newFakeStore()

	_, err := New(store).Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "USD", store.inserted[0].Currency)
}

func TestImporter_Import_ReportsProgress(t *testing.T) {
	store := newFakeStore()
	var calls []int

	imp := New(store).WithProgress(func(current, _ int) {
		calls = append(calls, current)
	})

	_, err := imp.Import(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, calls)
}
