package memorize

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{
			name:     "identical strings",
			a:        "for God so loved the world",
			b:        "for God so loved the world",
			expected: 1.0,
		},
		{
			name:     "identical after normalization",
			a:        "For God so loved the world,",
			b:        "for god so loved the world",
			expected: 1.0,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 1.0,
		},
		{
			name:     "both normalize to empty",
			a:        "!!!",
			b:        "...",
			expected: 1.0,
		},
		{
			name:     "completely different single chars",
			a:        "a",
			b:        "b",
			expected: 0.0,
		},
		{
			name:     "one substitution in ten chars",
			a:        "abcdefghij",
			b:        "abcdefghix",
			expected: 0.9,
		},
		{
			name:     "one deletion",
			a:        "abcde",
			b:        "abcd",
			expected: 0.8,
		},
		{
			name:     "completely different accented chars",
			a:        "ééé",
			b:        "aaa",
			expected: 0.0,
		},
		{
			name:     "one substitution in multibyte text",
			a:        "señor",
			b:        "seños",
			expected: 0.8,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Similarity(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"be still and know", "be still und know"},
		{"the Lord is my shepherd", "shepherd my is Lord the"},
		{"", "rejoice always"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Similarity not symmetric for %q / %q: %f vs %f", p[0], p[1], ab, ba)
		}
	}
}

func TestAcceptThresholdMonotonic(t *testing.T) {
	t.Parallel()

	a := "I can do all things through Christ who strengthens me"
	b := "I can do all things thru Christ who strengthens me"

	// Raising the threshold can only turn an accept into a reject.
	prev := true
	for _, threshold := range []float64{0.0, 0.25, 0.5, 0.75, 0.85, 0.95, 1.0} {
		accepted := Accept(a, b, threshold)
		if accepted && !prev {
			t.Fatalf("accept became true again at threshold %f", threshold)
		}
		prev = accepted
	}

	if !Accept(a, b, DefaultSimilarityThreshold) {
		t.Errorf("near-identical reply should pass the default threshold")
	}
	if Accept(a, "something else entirely", DefaultSimilarityThreshold) {
		t.Errorf("unrelated reply should fail the default threshold")
	}
}
