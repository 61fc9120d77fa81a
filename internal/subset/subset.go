// internal/subset/subset.go
// Package subset reads submission-set manifests: the ordered collection of
// submissions with known ground-truth grades that a generation run scores
// synthetic predictions against.
package subset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"gradegen/internal/artifact"
)

// Submission is one graded entry in a submission-set manifest.
type Submission struct {
	ID    string `json:"id"`
	Grade int    `json:"grade"`
}

// Set is a loaded submission-set manifest. Submission order matches the
// manifest and is significant: pairing and random draw order depend on it.
type Set struct {
	Path        string
	Name        string
	Submissions []Submission

	index map[string]struct{}
}

// manifest mirrors the on-disk JSON shape.
type manifest struct {
	Name        string       `json:"name"`
	Submissions []Submission `json:"submissions"`
}

// manifestSchema is the JSON Schema a manifest must satisfy before the
// semantic checks run.
const manifestSchema = `{
	"type": "object",
	"required": ["submissions"],
	"properties": {
		"name": {"type": "string"},
		"submissions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "grade"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"grade": {"type": "integer", "minimum": 0, "maximum": 10}
				}
			}
		}
	}
}`

// New builds an in-memory set for callers that already hold submissions.
func New(name string, submissions []Submission) *Set {
	set := &Set{
		Name:        name,
		Submissions: submissions,
		index:       make(map[string]struct{}, len(submissions)),
	}
	for _, sub := range submissions {
		set.index[sub.ID] = struct{}{}
	}
	return set
}

// Load reads, validates, and indexes the submission-set manifest at path.
func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading submission set: %w", err)
	}

	if err := Validate(raw); err != nil {
		return nil, fmt.Errorf("submission set %q: %w", path, err)
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("error parsing submission set: %w", err)
	}

	set := New(m.Name, m.Submissions)
	set.Path = path
	return set, nil
}

// Validate checks raw manifest bytes against the schema and the semantic
// rules the schema cannot express (unique ids). All schema violations are
// reported, not just the first.
func Validate(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(manifestSchema)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("manifest failed validation: %s", strings.Join(details, "; "))
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("error parsing manifest: %w", err)
	}
	seen := make(map[string]struct{}, len(m.Submissions))
	for _, sub := range m.Submissions {
		if _, dup := seen[sub.ID]; dup {
			return fmt.Errorf("duplicate submission id %q", sub.ID)
		}
		seen[sub.ID] = struct{}{}
		if sub.Grade < artifact.MinGrade || sub.Grade > artifact.MaxGrade {
			return fmt.Errorf("submission %q has grade %d outside [%d, %d]", sub.ID, sub.Grade, artifact.MinGrade, artifact.MaxGrade)
		}
	}
	return nil
}

// Contains reports whether id belongs to the set. Comparisons whose second
// participant fails this check are external anchors by convention.
func (s *Set) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of submissions in the set.
func (s *Set) Len() int {
	return len(s.Submissions)
}
