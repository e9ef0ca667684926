package pattern

import (
	"strconv"

	"github.com/pennyflow/pennyflow/internal/model"
)

// BuildKey derives the grouping key for a transaction from its merchant
// name and digit-stripped description. Transactions sharing a key are
// treated as the same recurring payee/purpose. Keys are derived on demand,
// never stored, and are only ever compared for equality.
func BuildKey(txn model.Transaction) string {
	base := Normalize(txn.MerchantName) + "_" + StripDigits(Normalize(txn.Description))
	return foldHash(base)
}

// Label returns a human-readable representative for a transaction's
// pattern, preferring the raw merchant name.
func Label(txn model.Transaction) string {
	if txn.MerchantName != "" {
		return txn.MerchantName
	}
	return Normalize(txn.Description)
}

// foldHash folds character codes into a 32-bit signed accumulator and
// encodes the result in base 36 for a short opaque key. Not cryptographic;
// keys never leave the process.
func foldHash(s string) string {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	return strconv.FormatUint(uint64(uint32(h)), 36)
}
