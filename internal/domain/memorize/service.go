package memorize

import (
	"math/rand"
	"sync"
	"time"

	"github.com/moloke/lightverse/internal/domain"
)

// ClozePolicy selects which redaction algorithm renders a step.
type ClozePolicy string

// Supported cloze policies. Prefix is used for plain-text SMS rendering;
// RandomMask drives the interactive per-word UI.
const (
	PolicyPrefix     ClozePolicy = "prefix"
	PolicyRandomMask ClozePolicy = "random_mask"
)

// Service bundles the engine's pure operations behind one interface with
// fixed parameters and a managed random source, so callers don't thread
// params and rand through every call site.
type Service interface {
	// RenderPrefix renders text at the given step under the prefix-reveal policy.
	RenderPrefix(text string, step int) ClozeResult

	// RenderMask renders text at the given step under the random-mask policy.
	RenderMask(text string, step int) []WordSlot

	// CheckBlanks validates per-blank entries against a mask cloze's hidden slots.
	CheckBlanks(slots []WordSlot, answers map[int]string) BlankVerdict

	// CheckReply validates a whole free-form reply against the verse text.
	CheckReply(reply, verseText string) bool

	// Advance computes the step transition for one accepted submission.
	Advance(currentStep int) (Progress, error)

	// ApplyStep computes the XP gain and streak update for one accepted submission.
	ApplyStep(today time.Time, prior *domain.Streak, completed bool) LedgerUpdate

	// Hint returns the retry hint text for a rejected submission.
	Hint(text string, step int) string
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params

	// rand is guarded because *rand.Rand is not safe for concurrent use
	// and mask renders may run from many request goroutines.
	mu   sync.Mutex
	rand *rand.Rand
}

// NewDefaultService creates an engine service with default parameters
// and a time-seeded random source.
func NewDefaultService() Service {
	return NewService(DefaultParams(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewService creates an engine service with the given parameters and
// random source. Tests pass a fixed-seed source for reproducible masks.
func NewService(params *Params, r *rand.Rand) Service {
	if params == nil {
		params = DefaultParams()
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &defaultService{
		params: params,
		rand:   r,
	}
}

func (s *defaultService) RenderPrefix(text string, step int) ClozeResult {
	return PrefixCloze(text, step)
}

func (s *defaultService) RenderMask(text string, step int) []WordSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MaskCloze(text, step, s.rand)
}

func (s *defaultService) CheckBlanks(slots []WordSlot, answers map[int]string) BlankVerdict {
	return ValidateBlanks(slots, answers)
}

func (s *defaultService) CheckReply(reply, verseText string) bool {
	return ValidateReply(reply, verseText, s.params.SimilarityThreshold)
}

func (s *defaultService) Advance(currentStep int) (Progress, error) {
	return Advance(currentStep)
}

func (s *defaultService) ApplyStep(
	today time.Time,
	prior *domain.Streak,
	completed bool,
) LedgerUpdate {
	return ApplyStep(today, prior, completed, s.params)
}

func (s *defaultService) Hint(text string, step int) string {
	return Hint(text, step)
}
