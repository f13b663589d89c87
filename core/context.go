package core

import (
	"time"

	"github.com/google/uuid"
)

// NewID generates a unique identifier for runs and context snapshots.
func NewID() string { return uuid.NewString() }

// StepStatus is the terminal status of one invocation attempt.
type StepStatus string

// Step statuses.
const (
	StepSuccess StepStatus = "success"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// StepRecord is the audit entry for one agent invocation attempt. The log of
// StepRecords is append-only and total-ordered; replaying a Request against
// agents with the same outputs yields the same agent/status sequence.
type StepRecord struct {
	Agent            AgentName   `json:"agent"`
	Attempt          int         `json:"attempt"`
	Status           StepStatus  `json:"status"`
	ErrorKind        FailureKind `json:"error_kind,omitempty"`
	Reason           string      `json:"reason,omitempty"`
	InputSnapshotRef string      `json:"input_snapshot_ref,omitempty"`
	Duration         time.Duration `json:"duration"`
	Timestamp        time.Time     `json:"timestamp"`
}

// Context is the accumulating per-run record: the original request, the
// latest Contribution per agent, derived Signals, and the ordered StepRecord
// log. It is created at request acceptance, lives for exactly one run, and is
// mutated only by the orchestrator after an agent call returns. Agents never
// touch a Context directly; they receive read-only Snapshots.
//
// Contributions accumulate monotonically: a recorded Contribution is never
// removed until the run terminates.
type Context struct {
	request       Request
	contributions map[AgentName]Contribution
	signals       Signals
	log           []StepRecord
}

// NewContext creates the run context for an accepted request.
func NewContext(req Request) *Context {
	return &Context{
		request:       req,
		contributions: map[AgentName]Contribution{},
	}
}

// Request returns the immutable originating request.
func (c *Context) Request() Request { return c.request }

// Contribution returns the latest contribution recorded for the named agent.
func (c *Context) Contribution(name AgentName) (Contribution, bool) {
	contrib, ok := c.contributions[name]
	return contrib, ok
}

// Signals returns the derived cross-agent signals.
func (c *Context) Signals() Signals { return c.signals }

// Apply merges a successful contribution and derives its signals. Called by
// the orchestrator only, after the owning invocation (or parallel group) has
// completed.
func (c *Context) Apply(contrib Contribution) {
	c.contributions[contrib.Producer()] = contrib

	switch v := contrib.(type) {
	case PersonalizationProfile:
		c.signals.LearningStyle = v.LearningStyle
		c.signals.Pace = v.Pace
	case WellnessAssessment:
		c.signals.FatigueLevel = v.FatigueLevel
		c.signals.FatigueKnown = true
	}
}

// AppendStep appends one attempt record to the audit log.
func (c *Context) AppendStep(rec StepRecord) {
	c.log = append(c.log, rec)
}

// Log returns a copy of the StepRecord log in append order.
func (c *Context) Log() []StepRecord {
	out := make([]StepRecord, len(c.log))
	copy(out, c.log)
	return out
}

// Outcome returns the terminal status of the named agent: the status of its
// most recent StepRecord. Intermediate retry attempts are only ever followed
// by further records for the same agent, so by the time the routing policy
// observes a failed record as latest, it is final.
func (c *Context) Outcome(name AgentName) (StepStatus, bool) {
	for i := len(c.log) - 1; i >= 0; i-- {
		if c.log[i].Agent == name {
			return c.log[i].Status, true
		}
	}
	return "", false
}

// Snapshot produces an immutable view of the current context state. Agents in
// the same parallel group all receive the group-start snapshot, so none can
// observe a sibling's contribution mid-group.
func (c *Context) Snapshot() *Snapshot {
	contribs := make(map[AgentName]Contribution, len(c.contributions))
	for k, v := range c.contributions {
		contribs[k] = v
	}

	outcomes := map[AgentName]StepStatus{}
	for _, rec := range c.log {
		outcomes[rec.Agent] = rec.Status
	}

	return &Snapshot{
		id:            NewID(),
		request:       c.request,
		contributions: contribs,
		signals:       c.signals,
		outcomes:      outcomes,
	}
}

// Snapshot is a read-only view of a Context at a point in time. It is safe to
// share across concurrently executing agents.
type Snapshot struct {
	id            string
	request       Request
	contributions map[AgentName]Contribution
	signals       Signals
	outcomes      map[AgentName]StepStatus
}

// ID identifies this snapshot; StepRecords reference it for replay debugging.
func (s *Snapshot) ID() string { return s.id }

// Request returns the originating request.
func (s *Snapshot) Request() Request { return s.request }

// Contribution returns the named agent's contribution at snapshot time.
func (s *Snapshot) Contribution(name AgentName) (Contribution, bool) {
	contrib, ok := s.contributions[name]
	return contrib, ok
}

// Has reports whether the named agent had contributed at snapshot time.
func (s *Snapshot) Has(name AgentName) bool {
	_, ok := s.contributions[name]
	return ok
}

// Signals returns the derived signals at snapshot time.
func (s *Snapshot) Signals() Signals { return s.signals }

// Outcome returns the named agent's terminal status at snapshot time.
func (s *Snapshot) Outcome(name AgentName) (StepStatus, bool) {
	st, ok := s.outcomes[name]
	return st, ok
}
