// internal/synthesis/distribution.go
package synthesis

import (
	"fmt"
	"math"

	"gradegen/internal/artifact"
)

const (
	// modeMass is the probability assigned to the predicted grade itself.
	modeMass = 0.70
	// neighborMass is the probability assigned to each in-range neighbor of
	// the predicted grade. Out-of-range neighbor mass folds into the mode.
	neighborMass = 0.15
	// sumTolerance bounds acceptable floating drift in the distribution sum.
	sumTolerance = 1e-9
)

// BuildDistribution constructs the probability distribution over all grade
// buckets for a predicted grade: 0.70 on the grade, 0.15 on each in-range
// neighbor, with boundary mass folded into the mode so the sum is always
// exactly 1.0. A sum outside tolerance is an internal invariant violation
// and returns an error rather than ever being written out.
func BuildDistribution(grade int) ([]float64, error) {
	if grade < artifact.MinGrade || grade > artifact.MaxGrade {
		return nil, fmt.Errorf("grade %d outside [%d, %d]", grade, artifact.MinGrade, artifact.MaxGrade)
	}

	dist := make([]float64, artifact.GradeBuckets)
	dist[grade] = modeMass
	if grade > artifact.MinGrade {
		dist[grade-1] = neighborMass
	} else {
		dist[grade] += neighborMass
	}
	if grade < artifact.MaxGrade {
		dist[grade+1] = neighborMass
	} else {
		dist[grade] += neighborMass
	}

	sum := 0.0
	for _, v := range dist {
		sum += v
	}
	if math.Abs(sum-1.0) > sumTolerance {
		return nil, fmt.Errorf("distribution for grade %d sums to %v, want 1.0", grade, sum)
	}

	return dist, nil
}
