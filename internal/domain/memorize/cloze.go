package memorize

import (
	"math"
	"math/rand"
	"strings"

	"github.com/moloke/lightverse/internal/domain"
)

// blankToken is the literal rendering of a hidden word in plain-text output.
const blankToken = "_____"

// maxBlankTokens caps the run of blank tokens appended by the prefix
// policy, regardless of how many words are hidden.
const maxBlankTokens = 5

// revealPercentages is the fraction of words visible at each step of the
// prefix-reveal policy, indexed by step-1. Steps outside [1, TotalSteps]
// fall back to the last entry.
var revealPercentages = [domain.TotalSteps]float64{1.00, 0.85, 0.70, 0.55, 0.40, 0.25, 0.10}

// hidePercentages is the fraction of words hidden at each step of the
// random-mask policy, indexed by step-1. Steps outside [1, TotalSteps]
// fall back to the last entry.
var hidePercentages = [domain.TotalSteps]float64{0, 0.15, 0.30, 0.45, 0.60, 0.75, 0.90}

// ClozeResult is the rendered output of the prefix-reveal policy.
type ClozeResult struct {
	DisplayText    string `json:"display_text"`
	Step           int    `json:"step"`
	TotalSteps     int    `json:"total_steps"`
	PercentVisible int    `json:"percent_visible"`
	VisibleWords   int    `json:"visible_words"`
}

// WordSlot is one word position in a random-mask cloze. Hidden slots are
// rendered as blank input fields by the UI and as blank tokens over SMS.
type WordSlot struct {
	Word   string `json:"word"`
	Hidden bool   `json:"hidden"`
}

// visibleWordCount returns how many words the prefix policy reveals at
// the given step: max(2, ceil(total*percentage)), clamped to total.
// Step 1 always reveals everything.
func visibleWordCount(totalWords, step int) int {
	if step == 1 {
		return totalWords
	}

	visible := int(math.Ceil(float64(totalWords) * revealPercentage(step)))
	if visible < 2 {
		visible = 2
	}
	if visible > totalWords {
		visible = totalWords
	}
	return visible
}

// revealPercentage looks up the reveal fraction for a step, falling back
// to the last table entry for out-of-range steps.
func revealPercentage(step int) float64 {
	if step < 1 || step > domain.TotalSteps {
		return revealPercentages[domain.TotalSteps-1]
	}
	return revealPercentages[step-1]
}

// hidePercentage looks up the hide fraction for a step, falling back to
// the last table entry for out-of-range steps.
func hidePercentage(step int) float64 {
	if step < 1 || step > domain.TotalSteps {
		return hidePercentages[domain.TotalSteps-1]
	}
	return hidePercentages[step-1]
}

// PrefixCloze renders text for the given step under the prefix-reveal
// policy: the first N words verbatim followed by a single run of up to
// five blank tokens standing in for the remainder. Step 1 returns the
// text unchanged. Deterministic for a given (text, step).
func PrefixCloze(text string, step int) ClozeResult {
	words := Words(text)
	totalWords := len(words)
	visible := visibleWordCount(totalWords, step)

	result := ClozeResult{
		Step:         step,
		TotalSteps:   domain.TotalSteps,
		VisibleWords: visible,
	}

	if step == 1 {
		result.DisplayText = text
		result.PercentVisible = 100
		return result
	}

	visiblePart := strings.Join(words[:visible], " ")
	hiddenCount := totalWords - visible

	if hiddenCount <= 0 {
		result.DisplayText = visiblePart
	} else {
		blanks := hiddenCount
		if blanks > maxBlankTokens {
			blanks = maxBlankTokens
		}
		result.DisplayText = visiblePart + " " + strings.Repeat(blankToken, blanks)
	}

	if totalWords > 0 {
		result.PercentVisible = int(math.Round(float64(visible) / float64(totalWords) * 100))
	}

	return result
}

// MaskCloze renders text for the given step under the random-mask
// policy: floor(total*hidePercentage) distinct word positions are chosen
// uniformly at random and marked hidden. The concrete hidden set differs
// between calls at the same step; each render stands alone because every
// hidden slot is validated independently against the same render's map.
func MaskCloze(text string, step int, r *rand.Rand) []WordSlot {
	words := Words(text)
	totalWords := len(words)

	slots := make([]WordSlot, totalWords)
	for i, w := range words {
		slots[i] = WordSlot{Word: w}
	}

	wordsToHide := int(float64(totalWords) * hidePercentage(step))
	if wordsToHide <= 0 {
		return slots
	}

	indices := make([]int, totalWords)
	for i := range indices {
		indices[i] = i
	}
	r.Shuffle(totalWords, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	for _, idx := range indices[:wordsToHide] {
		slots[idx].Hidden = true
	}

	return slots
}

// Hint returns a retry hint for a rejected submission: the words the
// prefix policy already reveals at the step plus three more, clamped to
// the full text, with a trailing ellipsis.
func Hint(text string, step int) string {
	words := Words(text)
	visible := visibleWordCount(len(words), step)

	hintWords := visible + 3
	if hintWords > len(words) {
		hintWords = len(words)
	}

	return strings.Join(words[:hintWords], " ") + "..."
}
