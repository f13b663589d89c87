package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10*time.Second, cfg.Orchestrator.InvokeTimeout.Std())
	assert.Equal(t, 2, cfg.Orchestrator.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Orchestrator.BackoffBase.Std())
	assert.Equal(t, 2.0, cfg.Orchestrator.BackoffFactor)
	assert.True(t, cfg.Orchestrator.Jitter)
	assert.Equal(t, 2, cfg.Orchestrator.StepCeilingFactor)
	assert.Equal(t, 3, cfg.Assessment.NumQuestions)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
orchestrator:
  invoke_timeout: 5s
  max_retries: 1
  backoff_base: 250ms
  jitter: false
assessment:
  num_questions: 5
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Orchestrator.InvokeTimeout.Std())
	assert.Equal(t, 1, cfg.Orchestrator.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Orchestrator.BackoffBase.Std())
	assert.False(t, cfg.Orchestrator.Jitter)
	assert.Equal(t, 5, cfg.Assessment.NumQuestions)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Unset keys keep their defaults.
	assert.Equal(t, 2.0, cfg.Orchestrator.BackoffFactor)
	assert.Equal(t, 2, cfg.Orchestrator.StepCeilingFactor)
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, "orchestrator:\n  invoke_timeout: soon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
