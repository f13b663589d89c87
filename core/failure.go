package core

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an agent invocation (or the run itself) failed.
// The kind decides retry behavior: Unavailable and Timeout are retryable,
// InvalidInput signals a routing bug and is not, PolicyViolation is fatal to
// the run.
type FailureKind string

// Failure kinds.
const (
	FailureUnavailable     FailureKind = "unavailable"
	FailureTimeout         FailureKind = "timeout"
	FailureInvalidInput    FailureKind = "invalid_input"
	FailurePolicyViolation FailureKind = "policy_violation"
)

// Retryable reports whether a failure of this kind may be re-attempted.
func (k FailureKind) Retryable() bool {
	return k == FailureUnavailable || k == FailureTimeout
}

// Failure is the typed error value agents return and the orchestrator folds
// into StepRecords. Agent-local failures never cross the orchestrator boundary
// as uncaught faults; they travel as Failure values.
type Failure struct {
	Kind  FailureKind
	Agent AgentName
	Err   error
}

// Error implements error.
func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("agent %s: %s", f.Agent, f.Kind)
	}
	return fmt.Sprintf("agent %s: %s: %v", f.Agent, f.Kind, f.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (f *Failure) Unwrap() error { return f.Err }

// Retryable reports whether the orchestrator may re-invoke the agent.
func (f *Failure) Retryable() bool { return f.Kind.Retryable() }

// NewUnavailable wraps a transient collaborator failure.
func NewUnavailable(agent AgentName, err error) *Failure {
	return &Failure{Kind: FailureUnavailable, Agent: agent, Err: err}
}

// NewTimeout wraps an invocation that exceeded its deadline.
func NewTimeout(agent AgentName, err error) *Failure {
	return &Failure{Kind: FailureTimeout, Agent: agent, Err: err}
}

// NewInvalidInput reports a prerequisite Contribution missing from the
// snapshot handed to an agent. It signals a routing bug and is never retried.
func NewInvalidInput(agent AgentName, format string, args ...any) *Failure {
	return &Failure{Kind: FailureInvalidInput, Agent: agent, Err: fmt.Errorf(format, args...)}
}

// NewPolicyViolation reports a defensive invariant breach: step budget
// exceeded or an unknown agent name returned by the routing policy.
func NewPolicyViolation(format string, args ...any) *Failure {
	return &Failure{Kind: FailurePolicyViolation, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the FailureKind from err. Errors that are not Failure
// values classify as Unavailable so that plain collaborator errors stay
// retryable by default.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return FailureUnavailable
}
