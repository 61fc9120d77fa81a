// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import "strings"

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultAccuracy is the comparison agreement rate used when the config omits the value.
	DefaultAccuracy = 0.8
	// DefaultSeed is the random seed used when the config omits the value.
	DefaultSeed = 42
	// defaultAnchorComparisons is how many external anchor comparisons a run injects.
	defaultAnchorComparisons = 3
	// defaultModel is the model name stamped on synthetic call records.
	defaultModel = "claude-sonnet-4-20250514"
)

// Config represents the top-level application configuration.
type Config struct {
	Accuracy          *float64 `json:"accuracy,omitempty"`
	Seed              *int64   `json:"seed,omitempty"`
	AnchorComparisons *int     `json:"anchorComparisons,omitempty"`
	Model             string   `json:"model,omitempty"`
	Description       string   `json:"description,omitempty"`
	Debug             bool     `json:"debug"`
	LogFile           string   `json:"logFile,omitempty"`
	ConfigPath        string   `json:"-"`
}

// AccuracyTarget returns the configured accuracy target, falling back to the default.
func (c Config) AccuracyTarget() float64 {
	if c.Accuracy == nil {
		return DefaultAccuracy
	}
	return *c.Accuracy
}

// RandomSeed returns the configured seed, falling back to the default.
func (c Config) RandomSeed() int64 {
	if c.Seed == nil {
		return DefaultSeed
	}
	return *c.Seed
}

// AnchorCount returns how many anchor comparisons a run injects.
func (c Config) AnchorCount() int {
	if c.AnchorComparisons == nil || *c.AnchorComparisons < 0 {
		return defaultAnchorComparisons
	}
	return *c.AnchorComparisons
}

// ModelName returns the model name stamped on synthetic call records.
func (c Config) ModelName() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	return defaultModel
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "gradegen.log"
}
