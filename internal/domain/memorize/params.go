package memorize

// Params defines the configurable constants of the memorization engine.
type Params struct {
	// XPPerStep is the XP credited for every accepted submission.
	XPPerStep int

	// CompletionBonus is the extra XP credited when a submission
	// completes the final step.
	CompletionBonus int

	// SimilarityThreshold is the minimum similarity score at which a
	// whole-reply (SMS) submission is accepted.
	SimilarityThreshold float64
}

// DefaultParams returns the production engine constants.
func DefaultParams() *Params {
	return &Params{
		XPPerStep:           10,
		CompletionBonus:     100,
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
}
