// internal/artifact/artifact.go
// Package artifact defines the evaluation artifact a generation run produces
// and its JSON read/write path.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write persists the artifact as indented JSON at path, creating parent
// directories as needed. A failed run never leaves a partial artifact: the
// encoder writes to a fully constructed in-memory value.
func (a *Artifact) Write(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating artifact file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(a); err != nil {
		return fmt.Errorf("error writing artifact: %w", err)
	}

	return nil
}

// Read loads an artifact previously written by Write.
func Read(path string) (*Artifact, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening artifact: %w", err)
	}
	defer file.Close()

	var a Artifact
	if err := json.NewDecoder(file).Decode(&a); err != nil {
		return nil, fmt.Errorf("error parsing artifact: %w", err)
	}
	return &a, nil
}
