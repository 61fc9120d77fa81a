// internal/synthesis/grade.go
package synthesis

import (
	"math/rand"

	"gradegen/internal/artifact"
	"gradegen/internal/util"
)

// PredictGrade perturbs a ground-truth grade by noise drawn uniformly from
// {-1, 0, +1} and clamps the result to the valid grade range. It consumes
// exactly one draw from rng.
func PredictGrade(rng *rand.Rand, truth int) int {
	noise := rng.Intn(3) - 1
	return util.Clamp(truth+noise, artifact.MinGrade, artifact.MaxGrade)
}
