// internal/synthesis/types.go
package synthesis

// Outcome is the three-way ground-truth result of a pairing. It stays
// internal to the synthesis step: the emitted Comparison entity is binary,
// with ties broken by a seeded draw before emission.
type Outcome int

const (
	// OutcomeA means the first submission's ground-truth grade is higher.
	OutcomeA Outcome = iota
	// OutcomeB means the second submission's ground-truth grade is higher.
	OutcomeB
	// OutcomeTie means the ground-truth grades are equal; there is no
	// deterministic winner to agree with.
	OutcomeTie
)

// Verdict is the synthesized judgment for one pair of submissions.
type Verdict struct {
	// Winner is artifact.WinnerA or artifact.WinnerB.
	Winner string
	// Tied records that the ground-truth outcome was a tie, so the winner
	// was randomly chosen before the accuracy gate applied. Consumers
	// measuring realized accuracy must bucket tied pairs separately.
	Tied bool
	// Confidence is uniform in [0.6, 0.95) and deliberately independent of
	// whether the observed winner matches ground truth.
	Confidence float64
}
