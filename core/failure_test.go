package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKind_Retryable(t *testing.T) {
	assert.True(t, FailureUnavailable.Retryable())
	assert.True(t, FailureTimeout.Retryable())
	assert.False(t, FailureInvalidInput.Retryable())
	assert.False(t, FailurePolicyViolation.Retryable())
}

func TestFailure_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	f := NewUnavailable(AgentLearning, cause)

	assert.Contains(t, f.Error(), "learning")
	assert.Contains(t, f.Error(), "unavailable")
	assert.ErrorIs(t, f, cause)

	var target *Failure
	assert.ErrorAs(t, fmt.Errorf("invoke: %w", f), &target)
	assert.Equal(t, FailureUnavailable, target.Kind)
	assert.Equal(t, AgentLearning, target.Agent)
}

func TestFailure_ErrorWithoutCause(t *testing.T) {
	f := &Failure{Kind: FailureTimeout, Agent: AgentWellness}
	assert.Equal(t, "agent wellness: timeout", f.Error())
}

func TestNewInvalidInput(t *testing.T) {
	f := NewInvalidInput(AgentSchedule, "missing %s", "wellness")
	assert.Equal(t, FailureInvalidInput, f.Kind)
	assert.False(t, f.Retryable())
	assert.Contains(t, f.Error(), "missing wellness")
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, FailureTimeout, KindOf(NewTimeout(AgentLearning, errors.New("deadline"))))
	assert.Equal(t, FailurePolicyViolation, KindOf(NewPolicyViolation("loop detected")))

	// Wrapped failures still classify by their kind.
	wrapped := fmt.Errorf("outer: %w", NewInvalidInput(AgentAssessment, "bad input"))
	assert.Equal(t, FailureInvalidInput, KindOf(wrapped))

	// Plain errors default to the retryable kind.
	assert.Equal(t, FailureUnavailable, KindOf(errors.New("something broke")))
}
