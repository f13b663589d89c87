// Package config holds the YAML-backed configuration surface: orchestrator
// tuning knobs, quiz sizing and logging. Values absent from a file keep
// their defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "500ms"
// or "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// OrchestratorConfig tunes the graph executor.
type OrchestratorConfig struct {
	// InvokeTimeout bounds a single agent invocation attempt.
	InvokeTimeout Duration `yaml:"invoke_timeout"`
	// MaxRetries caps re-invocations after transient failures.
	MaxRetries int `yaml:"max_retries"`
	// BackoffBase and BackoffFactor define the exponential retry delay.
	BackoffBase   Duration `yaml:"backoff_base"`
	BackoffFactor float64  `yaml:"backoff_factor"`
	// Jitter randomizes retry delays.
	Jitter bool `yaml:"jitter"`
	// StepCeilingFactor bounds routing iterations to factor x agent count.
	StepCeilingFactor int `yaml:"step_ceiling_factor"`
}

// AssessmentConfig tunes quiz generation.
type AssessmentConfig struct {
	NumQuestions int `yaml:"num_questions"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// Config is the top-level configuration document.
type Config struct {
	Orchestrator OrchestratorConfig `yaml:"orchestrator"`
	Assessment   AssessmentConfig   `yaml:"assessment"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Orchestrator: OrchestratorConfig{
			InvokeTimeout:     Duration(10 * time.Second),
			MaxRetries:        2,
			BackoffBase:       Duration(500 * time.Millisecond),
			BackoffFactor:     2,
			Jitter:            true,
			StepCeilingFactor: 2,
		},
		Assessment: AssessmentConfig{NumQuestions: 3},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their default
// values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
