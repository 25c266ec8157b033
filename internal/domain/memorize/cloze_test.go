package memorize

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/moloke/lightverse/internal/domain"
)

// nineWords is a 9-word sample text used across cloze tests.
const nineWords = "Trust in the LORD with all your heart today"

func TestPrefixClozeStepOne(t *testing.T) {
	t.Parallel()

	texts := []string{
		nineWords,
		"I can do all things through Christ who strengthens me.",
		"Rejoice always.",
		"word",
	}

	for _, text := range texts {
		result := PrefixCloze(text, 1)
		if result.DisplayText != text {
			t.Errorf("step 1 must return text unchanged, got %q", result.DisplayText)
		}
		if result.PercentVisible != 100 {
			t.Errorf("step 1 percent visible = %d, want 100", result.PercentVisible)
		}
	}
}

func TestPrefixClozeStepFour(t *testing.T) {
	t.Parallel()

	// 9 words at step 4: percentage 0.55, ceil(9*0.55) = 5 visible words
	// followed by a run of up to five blank tokens.
	result := PrefixCloze(nineWords, 4)

	if result.VisibleWords != 5 {
		t.Fatalf("visible words = %d, want 5", result.VisibleWords)
	}

	want := "Trust in the LORD with " + strings.Repeat(blankToken, 4)
	if result.DisplayText != want {
		t.Errorf("display = %q, want %q", result.DisplayText, want)
	}
}

func TestPrefixClozeRevealNonIncreasing(t *testing.T) {
	t.Parallel()

	text := "I can do all things through Christ who strengthens me."
	prev := math.MaxInt

	for step := 1; step <= domain.TotalSteps; step++ {
		result := PrefixCloze(text, step)
		if result.VisibleWords > prev {
			t.Errorf("visible words increased at step %d: %d > %d", step, result.VisibleWords, prev)
		}
		prev = result.VisibleWords
	}
}

func TestPrefixClozeEdgeCases(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		text        string
		step        int
		wantVisible int
	}{
		{
			name:        "single word never exceeds word count",
			text:        "Rejoice",
			step:        5,
			wantVisible: 1,
		},
		{
			name:        "two words at deepest step",
			text:        "Pray continually",
			step:        7,
			wantVisible: 2,
		},
		{
			name:        "step above range falls back to last entry",
			text:        nineWords,
			step:        12,
			wantVisible: 2, // max(2, ceil(9*0.10)) = 2
		},
		{
			name:        "step below range falls back to last entry",
			text:        nineWords,
			step:        0,
			wantVisible: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := PrefixCloze(tc.text, tc.step)
			if result.VisibleWords != tc.wantVisible {
				t.Errorf("visible words = %d, want %d", result.VisibleWords, tc.wantVisible)
			}
		})
	}
}

func TestPrefixClozeSingleWord(t *testing.T) {
	t.Parallel()

	// One word stays fully visible at every step: the minimum-two-visible
	// floor clamps to the word count, leaving nothing to hide.
	for step := 2; step <= domain.TotalSteps; step++ {
		result := PrefixCloze("Rejoice", step)
		if result.VisibleWords != 1 {
			t.Errorf("step %d: visible words = %d, want 1", step, result.VisibleWords)
		}
		if result.DisplayText != "Rejoice" {
			t.Errorf("step %d: display = %q, want the full word", step, result.DisplayText)
		}
		if strings.Contains(result.DisplayText, blankToken) {
			t.Errorf("step %d: display %q must not contain blanks", step, result.DisplayText)
		}
	}
}

func TestPrefixClozeBlankRunCapped(t *testing.T) {
	t.Parallel()

	// 20 hidden words still render as at most five blank tokens.
	text := strings.Repeat("word ", 22)
	result := PrefixCloze(strings.TrimSpace(text), 7)

	if got := strings.Count(result.DisplayText, blankToken); got != maxBlankTokens {
		t.Errorf("blank tokens = %d, want %d", got, maxBlankTokens)
	}
}

func TestMaskClozeHiddenCardinality(t *testing.T) {
	t.Parallel()

	text := "I can do all things through Christ who strengthens me." // 10 words

	testCases := []struct {
		step       int
		wantHidden int
	}{
		{1, 0},                          // step 1 hides nothing
		{2, 1},                          // floor(10*0.15)
		{4, 4},                          // floor(10*0.45)
		{7, 9},                          // floor(10*0.90)
		{9, 9},                          // out of range falls back to 0.90
	}

	for _, tc := range testCases {
		r := rand.New(rand.NewSource(42))
		slots := MaskCloze(text, tc.step, r)

		if len(slots) != 10 {
			t.Fatalf("step %d: slot count = %d, want 10", tc.step, len(slots))
		}

		hidden := 0
		for _, slot := range slots {
			if slot.Hidden {
				hidden++
			}
		}
		if hidden != tc.wantHidden {
			t.Errorf("step %d: hidden = %d, want %d", tc.step, hidden, tc.wantHidden)
		}
	}
}

func TestMaskClozePreservesWords(t *testing.T) {
	t.Parallel()

	text := "Be still and know that I am God"
	r := rand.New(rand.NewSource(7))
	slots := MaskCloze(text, 5, r)

	words := strings.Fields(text)
	for i, slot := range slots {
		if slot.Word != words[i] {
			t.Errorf("slot %d word = %q, want %q", i, slot.Word, words[i])
		}
	}
}

func TestMaskClozeDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	text := "for God so loved the world that he gave his one and only Son"

	a := MaskCloze(text, 4, rand.New(rand.NewSource(99)))
	b := MaskCloze(text, 4, rand.New(rand.NewSource(99)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different masks at slot %d", i)
		}
	}
}

func TestHint(t *testing.T) {
	t.Parallel()

	// At step 4 the prefix policy reveals 5 of 9 words; the hint adds three.
	got := Hint(nineWords, 4)
	want := "Trust in the LORD with all your heart..."
	if got != want {
		t.Errorf("Hint = %q, want %q", got, want)
	}

	// Hint never runs past the end of the text.
	short := Hint("Rejoice always", 1)
	if short != "Rejoice always..." {
		t.Errorf("Hint on short text = %q", short)
	}
}
