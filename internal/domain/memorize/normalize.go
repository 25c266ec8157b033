package memorize

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes free text for comparison: it lowercases,
// removes every character that is not a letter, digit, underscore, or
// whitespace, collapses runs of whitespace to a single space, and trims.
// It is total: empty input yields the empty string.
//
// Underscore survives deliberately to match the \w word-character class
// the similarity threshold was tuned against.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Words splits text into whitespace-delimited words.
func Words(text string) []string {
	return strings.Fields(text)
}

// CountWords returns the number of whitespace-delimited words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FirstWords returns the first count words of text joined by single
// spaces. If text has fewer words, all of them are returned.
func FirstWords(text string, count int) string {
	words := strings.Fields(text)
	if count > len(words) {
		count = len(words)
	}
	if count < 0 {
		count = 0
	}
	return strings.Join(words[:count], " ")
}
