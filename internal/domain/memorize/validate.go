package memorize

import "strings"

// trailingPunctuation is the single trailing character stripped from
// both sides of a per-blank comparison.
const trailingPunctuation = ".,;!?"

// BlankVerdict is the per-blank outcome of validating an interactive
// submission. Keys of Results are word indices of hidden slots, so the
// UI can highlight individual mistakes without discarding correct
// entries.
type BlankVerdict struct {
	AllCorrect bool         `json:"all_correct"`
	Results    map[int]bool `json:"results"`
}

// ValidateBlanks checks a learner's per-blank entries against the hidden
// slots of a mask cloze. Comparison is case-insensitive after stripping
// at most one trailing punctuation character (. , ; ! ?) from each side;
// it is intentionally not accent-insensitive. Entries for missing
// indices count as wrong. Pure: the verdict depends only on the slots
// and the answers.
func ValidateBlanks(slots []WordSlot, answers map[int]string) BlankVerdict {
	verdict := BlankVerdict{
		AllCorrect: true,
		Results:    make(map[int]bool),
	}

	for i, slot := range slots {
		if !slot.Hidden {
			continue
		}

		correct := cleanWord(answers[i]) == cleanWord(slot.Word)
		verdict.Results[i] = correct
		if !correct {
			verdict.AllCorrect = false
		}
	}

	return verdict
}

// ValidateReply checks a whole free-form reply (the SMS path) against
// the full verse text using fuzzy similarity. Accept/reject is binary;
// there is no partial credit.
func ValidateReply(reply, verseText string, threshold float64) bool {
	return Accept(reply, verseText, threshold)
}

// cleanWord lowercases a word and strips one trailing punctuation
// character if present.
func cleanWord(w string) string {
	w = strings.ToLower(strings.TrimSpace(w))
	if len(w) > 0 && strings.ContainsRune(trailingPunctuation, rune(w[len(w)-1])) {
		w = w[:len(w)-1]
	}
	return w
}
