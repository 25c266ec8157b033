package memorize

// DefaultSimilarityThreshold is the minimum similarity at which a
// free-form reply is accepted as a match for the verse text.
const DefaultSimilarityThreshold = 0.85

// Similarity computes an edit-distance-based similarity score in [0, 1]
// between two strings. Both inputs are normalized first; the score is
// 1 - distance/maxLen over the normalized forms. Two strings that
// normalize to empty are defined as identical (score 1.0).
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 1.0
	}

	// Distance counts runes, so the denominator must too.
	maxLen := len([]rune(na))
	if n := len([]rune(nb)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshtein(na, nb))/float64(maxLen)
}

// Accept reports whether a and b are similar at or above the given
// threshold. Raising the threshold can only turn an accept into a
// reject, never the reverse.
func Accept(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// levenshtein computes the classic edit distance between two strings
// with unit cost for insertions, deletions, and substitutions, using
// the full dynamic-programming table (two rows kept in memory).
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[j] = min3(
				prev[j-1]+cost, // substitution
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
