// internal/artifact/types.go
package artifact

// Grade bounds for submissions and predictions.
const (
	MinGrade = 0
	MaxGrade = 10
	// GradeBuckets is the length of a grade probability distribution,
	// one bucket per grade value.
	GradeBuckets = MaxGrade - MinGrade + 1
)

// Winner values for a Comparison. The entity is binary: ties are broken
// before a Comparison is emitted.
const (
	WinnerA = "a"
	WinnerB = "b"
)

// Message is one turn of a synthetic model conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CallRecord describes one simulated model invocation. It exists so that
// results carry supporting call evidence; nothing re-executes it.
type CallRecord struct {
	ID           string    `json:"id"`
	Timestamp    int64     `json:"timestamp"`
	Model        string    `json:"model"`
	Temperature  float64   `json:"temperature"`
	MaxTokens    int       `json:"max_tokens"`
	Messages     []Message `json:"messages"`
	Output       string    `json:"output"`
	StopReason   string    `json:"stop_reason"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	LatencyMS    int       `json:"latency_ms"`
}

// GradeResult is a synthetic grade prediction for one submission.
// Distribution always has GradeBuckets entries summing to 1.0, with its
// mode at Grade.
type GradeResult struct {
	SubmissionID string    `json:"submission_id"`
	Grade        int       `json:"grade"`
	Distribution []float64 `json:"distribution"`
	CallIDs      []string  `json:"call_ids"`
	GradedAt     int64     `json:"graded_at"`
}

// Comparison is a synthetic pairwise judgment. For anchor comparisons
// SubmissionB is a sentinel id absent from the source submission set; that
// absence is the only marker of externality.
type Comparison struct {
	ID            string   `json:"id"`
	SubmissionA   string   `json:"submission_a"`
	SubmissionB   string   `json:"submission_b"`
	Winner        string   `json:"winner"`
	CallIDs       []string `json:"call_ids"`
	ComparedAt    int64    `json:"compared_at"`
	Confidence    float64  `json:"confidence"`
	Justification string   `json:"justification"`
}

// Artifact is one generation run's output: run metadata plus the ordered
// collections of calls, grades, and comparisons. The source submission set
// is referenced by path, never embedded.
type Artifact struct {
	ID             string        `json:"id"`
	Source         string        `json:"source"`
	Description    string        `json:"description"`
	CreatedAt      int64         `json:"created_at"`
	AccuracyTarget float64       `json:"accuracy_target"`
	Seed           int64         `json:"seed"`
	Calls          []CallRecord  `json:"calls"`
	Grades         []GradeResult `json:"grades"`
	Comparisons    []Comparison  `json:"comparisons"`
}

// External partitions the artifact's comparisons by membership of the second
// participant, using the caller's submission-set lookup. Comparisons whose
// SubmissionB fails the lookup are external anchors.
func (a *Artifact) External(isMember func(string) bool) (internal, external []Comparison) {
	for _, cmp := range a.Comparisons {
		if isMember(cmp.SubmissionB) {
			internal = append(internal, cmp)
		} else {
			external = append(external, cmp)
		}
	}
	return internal, external
}
