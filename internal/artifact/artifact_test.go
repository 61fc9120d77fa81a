package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func sampleArtifact() *Artifact {
	return &Artifact{
		ID:             "run-1",
		Source:         "d/set.json",
		Description:    "round trip",
		CreatedAt:      1700000000000,
		AccuracyTarget: 0.8,
		Seed:           42,
		Calls: []CallRecord{{
			ID:        "grade_call_000",
			Timestamp: 1700000000000,
			Model:     "test-model",
			MaxTokens: 4096,
			Messages:  []Message{{Role: "user", Content: "Grade this submission: sub_a..."}},
			Output:    "Grade: 4",
		}},
		Grades: []GradeResult{{
			SubmissionID: "sub_a",
			Grade:        4,
			Distribution: []float64{0, 0, 0, 0.15, 0.7, 0.15, 0, 0, 0, 0, 0},
			CallIDs:      []string{"grade_call_000"},
			GradedAt:     1700000000500,
		}},
		Comparisons: []Comparison{
			{
				ID:          "comp_000",
				SubmissionA: "sub_a",
				SubmissionB: "sub_b",
				Winner:      WinnerB,
				CallIDs:     []string{"comp_call_000"},
				ComparedAt:  1700000100500,
				Confidence:  0.72,
			},
			{
				ID:          "ext_comp_000",
				SubmissionA: "sub_a",
				SubmissionB: "external_anchor_exemplar",
				Winner:      WinnerA,
				CallIDs:     []string{"ext_comp_call_000"},
				ComparedAt:  1700000200500,
				Confidence:  0.85,
			},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	original := sampleArtifact()
	if err := original.Write(path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	loaded, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	want, _ := json.Marshal(original)
	got, _ := json.Marshal(loaded)
	if string(got) != string(want) {
		t.Fatalf("round trip mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestWriteIsIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := sampleArtifact().Write(path); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Fatalf("unexpected artifact content: %q", data[:min(len(data), 20)])
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid json: %v", err)
	}
	if decoded["source"] != "d/set.json" {
		t.Fatalf("source = %v, want d/set.json", decoded["source"])
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestExternalPartition(t *testing.T) {
	art := sampleArtifact()
	members := map[string]struct{}{"sub_a": {}, "sub_b": {}}
	inSet, external := art.External(func(id string) bool {
		_, ok := members[id]
		return ok
	})

	if len(inSet) != 1 || inSet[0].ID != "comp_000" {
		t.Fatalf("in-set partition = %+v, want the sub_a/sub_b comparison", inSet)
	}
	if len(external) != 1 || external[0].ID != "ext_comp_000" {
		t.Fatalf("external partition = %+v, want the anchor comparison", external)
	}
}
