// internal/synthesis/generator.go
// Package synthesis generates controlled-accuracy evaluation artifacts: noisy
// grade predictions with probability distributions, pairwise comparisons
// whose ground-truth agreement rate is the caller's accuracy target, and
// always-won external anchor comparisons for exclusion-logic testing.
//
// All randomness comes from one owned seeded generator, threaded through the
// steps in a fixed order: one noise draw per submission (manifest order),
// then per pair a tie-break draw (ties only), the accuracy draw, and the
// confidence draw. Anchor rows consume no randomness. A (submission
// sequence, seed, accuracy) triple fully determines the output sequences.
package synthesis

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"gradegen/internal/artifact"
	"gradegen/internal/subset"
	"gradegen/internal/util"
)

// Params parametrize one generation run.
type Params struct {
	// Accuracy is the probability that an observed comparison winner matches
	// the ground-truth winner. Must be in [0, 1].
	Accuracy float64
	// Seed initializes the run's owned random generator.
	Seed int64
	// Description is free text stored on the artifact.
	Description string
	// Model is the model name stamped on synthetic call records.
	Model string
	// AnchorCount is how many external anchor comparisons to inject, capped
	// at the submission count.
	AnchorCount int
	// BaseTime anchors all record timestamps. Zero means time.Now; tests
	// pin it for byte-identical output.
	BaseTime time.Time
}

// Validate fails fast on parameters that would produce a meaningless run.
func (p Params) Validate() error {
	if p.Accuracy < 0 || p.Accuracy > 1 {
		return fmt.Errorf("accuracy target %v outside [0, 1]", p.Accuracy)
	}
	if p.AnchorCount < 0 {
		return fmt.Errorf("anchor comparison count %d is negative", p.AnchorCount)
	}
	return nil
}

// Generator drives one full generation pass over a submission set.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// New validates params and creates a generator with its own seeded random
// source. Generators never share random state, so runs can execute
// independently.
func New(params Params) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		params: params,
		rng:    rand.New(rand.NewSource(params.Seed)),
	}, nil
}

// Run executes the two-stage pass: all grade results first, then all pair
// comparisons, then anchor comparisons. Each grade and comparison gets one
// supporting call record. The returned artifact references the submission
// set by path.
func (g *Generator) Run(set *subset.Set) (*artifact.Artifact, error) {
	base := g.params.BaseTime
	if base.IsZero() {
		base = time.Now()
	}
	baseMS := base.UnixMilli()

	art := &artifact.Artifact{
		ID:             uuid.NewString(),
		Source:         set.Path,
		Description:    g.params.Description,
		CreatedAt:      baseMS,
		AccuracyTarget: g.params.Accuracy,
		Seed:           g.params.Seed,
	}

	for i, sub := range set.Submissions {
		predicted := PredictGrade(g.rng, sub.Grade)
		dist, err := BuildDistribution(predicted)
		if err != nil {
			return nil, fmt.Errorf("building distribution for %q: %w", sub.ID, err)
		}

		callID := fmt.Sprintf("grade_call_%03d", i)
		callAt := baseMS + int64(i)*1000
		art.Calls = append(art.Calls, artifact.CallRecord{
			ID:          callID,
			Timestamp:   callAt,
			Model:       g.params.Model,
			Temperature: 0.0,
			MaxTokens:   4096,
			Messages: []artifact.Message{{
				Role:    "user",
				Content: fmt.Sprintf("Grade this submission: %s...", sub.ID),
			}},
			Output:       fmt.Sprintf("Grade: %d\n\nJustification: The submission demonstrates...", predicted),
			StopReason:   "end_turn",
			InputTokens:  2000,
			OutputTokens: 500,
			LatencyMS:    2500,
		})
		art.Grades = append(art.Grades, artifact.GradeResult{
			SubmissionID: sub.ID,
			Grade:        predicted,
			Distribution: dist,
			CallIDs:      []string{callID},
			GradedAt:     callAt + 500,
		})
	}

	for count, pair := range Pairs(set.Len()) {
		subA := set.Submissions[pair.A]
		subB := set.Submissions[pair.B]
		verdict := Judge(g.rng, subA.Grade, subB.Grade, g.params.Accuracy)

		callID := fmt.Sprintf("comp_call_%03d", count)
		compAt := baseMS + 100000 + int64(count)*1000
		winnerLabel := strings.ToUpper(verdict.Winner)
		art.Calls = append(art.Calls, artifact.CallRecord{
			ID:          callID,
			Timestamp:   compAt,
			Model:       g.params.Model,
			Temperature: 0.0,
			MaxTokens:   4096,
			Messages: []artifact.Message{{
				Role:    "user",
				Content: fmt.Sprintf("Compare submissions %s and %s...", subA.ID, subB.ID),
			}},
			Output:       fmt.Sprintf("Winner: %s\n\nSubmission %s demonstrates stronger understanding...", winnerLabel, winnerLabel),
			StopReason:   "end_turn",
			InputTokens:  4000,
			OutputTokens: 800,
			LatencyMS:    4000,
		})
		art.Comparisons = append(art.Comparisons, artifact.Comparison{
			ID:            fmt.Sprintf("comp_%03d", count),
			SubmissionA:   subA.ID,
			SubmissionB:   subB.ID,
			Winner:        verdict.Winner,
			CallIDs:       []string{callID},
			ComparedAt:    compAt + 500,
			Confidence:    verdict.Confidence,
			Justification: fmt.Sprintf("Submission %s shows better analysis and clearer argumentation.", winnerLabel),
		})
	}

	anchors := util.Min(g.params.AnchorCount, set.Len())
	for i := 0; i < anchors; i++ {
		sub := set.Submissions[i]
		callID := fmt.Sprintf("ext_comp_call_%03d", i)
		compAt := baseMS + 200000 + int64(i)*1000
		art.Calls = append(art.Calls, artifact.CallRecord{
			ID:          callID,
			Timestamp:   compAt,
			Model:       g.params.Model,
			Temperature: 0.0,
			MaxTokens:   4096,
			Messages: []artifact.Message{{
				Role:    "user",
				Content: fmt.Sprintf("Compare %s against exemplar anchor...", sub.ID),
			}},
			Output:       "Winner: A\n\nThe submission exceeds the anchor quality...",
			StopReason:   "end_turn",
			InputTokens:  4000,
			OutputTokens: 600,
			LatencyMS:    3500,
		})
		art.Comparisons = append(art.Comparisons, artifact.Comparison{
			ID:            fmt.Sprintf("ext_comp_%03d", i),
			SubmissionA:   sub.ID,
			SubmissionB:   AnchorID,
			Winner:        artifact.WinnerA,
			CallIDs:       []string{callID},
			ComparedAt:    compAt + 500,
			Confidence:    anchorConfidence,
			Justification: anchorJustification,
		})
	}

	return art, nil
}
