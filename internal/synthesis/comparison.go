// internal/synthesis/comparison.go
package synthesis

import (
	"math/rand"

	"gradegen/internal/artifact"
)

const (
	// minConfidence and maxConfidence bound the uniform confidence draw for
	// pair comparisons. Confidence never signals correctness.
	minConfidence = 0.60
	maxConfidence = 0.95
)

// TrueOutcome computes the ground-truth result of a pairing from the two
// ground-truth grades.
func TrueOutcome(gradeA, gradeB int) Outcome {
	switch {
	case gradeA > gradeB:
		return OutcomeA
	case gradeA < gradeB:
		return OutcomeB
	default:
		return OutcomeTie
	}
}

// Judge produces the observed verdict for one pair. The observed winner
// agrees with the ground-truth winner with probability accuracy; on a tie
// the "true" winner is itself an unbiased draw first.
//
// Draw order is part of the reproducibility contract: tie-break (ties
// only), then the accuracy gate, then confidence. Reordering these changes
// every downstream draw for a given seed.
func Judge(rng *rand.Rand, gradeA, gradeB int, accuracy float64) Verdict {
	outcome := TrueOutcome(gradeA, gradeB)
	tied := outcome == OutcomeTie
	if tied {
		if rng.Intn(2) == 0 {
			outcome = OutcomeA
		} else {
			outcome = OutcomeB
		}
	}

	winner := artifact.WinnerA
	if outcome == OutcomeB {
		winner = artifact.WinnerB
	}
	if rng.Float64() >= accuracy {
		winner = flip(winner)
	}

	confidence := minConfidence + rng.Float64()*(maxConfidence-minConfidence)

	return Verdict{
		Winner:     winner,
		Tied:       tied,
		Confidence: confidence,
	}
}

func flip(winner string) string {
	if winner == artifact.WinnerA {
		return artifact.WinnerB
	}
	return artifact.WinnerA
}
