// Package pattern derives merchant/description identity keys, similarity
// scores, and scope-expansion matches for transactions.
package pattern

import (
	"sort"
	"strings"
	"unicode"
)

// Normalize canonicalizes free-text merchant names and descriptions:
// lower-case, strip everything but letters, digits and spaces, collapse
// whitespace runs, trim. Normalize is idempotent; empty or whitespace-only
// input yields the empty string.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// StripDigits removes all digits from text and re-collapses whitespace.
// Applied to descriptions so that incrementing invoice numbers, embedded
// dates and card fragments do not split a recurring payee into many keys.
func StripDigits(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// hintKeywords maps semantic category buckets to merchant keywords. A
// bucket applies when any of its keywords appears as a substring of the
// normalized text.
var hintKeywords = map[string][]string{
	"food":          {"restaurant", "cafe", "coffee", "pizza", "burger", "grocery", "supermarket", "bakery", "deli"},
	"transport":     {"taxi", "uber", "lyft", "fuel", "gas station", "parking", "metro", "transit", "railway"},
	"shopping":      {"amazon", "store", "shop", "mall", "market", "retail"},
	"utilities":     {"electric", "water", "internet", "phone", "mobile", "telecom", "utility"},
	"health":        {"pharmacy", "doctor", "dental", "clinic", "hospital", "medical"},
	"entertainment": {"netflix", "spotify", "cinema", "movie", "theater", "concert", "game"},
}

// CategoryHints scans the normalized text for known merchant keywords and
// returns the matching bucket names, sorted for determinism. Returns nil
// when nothing matches.
func CategoryHints(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var buckets []string
	for bucket, keywords := range hintKeywords {
		for _, keyword := range keywords {
			if strings.Contains(normalized, keyword) {
				buckets = append(buckets, bucket)
				break
			}
		}
	}
	sort.Strings(buckets)
	return buckets
}
