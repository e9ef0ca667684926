package pattern

// DefaultSimilarityThreshold is the fuzzy-duplicate cutoff: two merchants
// at or above this similarity are treated as the same payee for display
// and dedup purposes.
const DefaultSimilarityThreshold = 0.8

// Similarity returns the edit-distance closeness of two normalized strings
// in [0,1]. It is symmetric, Similarity(a, a) is 1, two empty strings score
// 1, and an empty string against a non-empty one scores 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	distance := levenshtein(ra, rb)
	return float64(maxLen-distance) / float64(maxLen)
}

// levenshtein computes the classic edit distance with unit costs for
// insertion, deletion, and substitution, using a single-row DP.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
