package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/plan"
)

// Policy decides which agent(s) run next given a read-only snapshot of the
// run context. Implementations must be pure: identical snapshots yield
// identical decisions.
type Policy interface {
	Next(snap *core.Snapshot) core.NextAction
}

// Options holds configuration overrides passed to New().
type Options struct {
	// InvokeTimeout bounds a single agent invocation attempt.
	InvokeTimeout time.Duration
	// MaxRetries caps re-invocations after a retryable failure; an agent is
	// invoked at most MaxRetries+1 times per run.
	MaxRetries int
	// BackoffBase and BackoffFactor define the exponential retry delay.
	BackoffBase   time.Duration
	BackoffFactor float64
	// Jitter randomizes each delay into [d/2, d) to avoid thundering herds.
	// Disable for reproducible timing in tests.
	Jitter bool
	// Rand seeds the jitter; defaults to a time-seeded source.
	Rand *rand.Rand
	// StepCeilingFactor bounds the routing loop to factor x agentCount
	// iterations as a defensive invariant against a misconfigured policy.
	StepCeilingFactor int
	// Logger receives structured run and invocation records.
	Logger logging.Logger
}

// Orchestrator drives the routing loop for study-plan runs. Construct once,
// share freely: each run gets its own context and cancellation handle.
type Orchestrator struct {
	agents map[core.AgentName]core.Agent
	policy Policy

	invokeTimeout time.Duration
	maxRetries    int
	backoffBase   time.Duration
	backoffFactor float64
	jitter        bool
	stepCeiling   int
	logger        logging.Logger

	randMu sync.Mutex
	rand   *rand.Rand

	mu         sync.RWMutex
	activeRuns map[string]context.CancelFunc

	health *healthRegistry
}

// New constructs an Orchestrator over the given agents and routing policy
// with optional overrides. Defaults: 10s invocation timeout, 2 retries,
// 500ms base backoff doubling with jitter, step ceiling of 2x agent count.
func New(agents []core.Agent, policy Policy, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		InvokeTimeout:     10 * time.Second,
		MaxRetries:        2,
		BackoffBase:       500 * time.Millisecond,
		BackoffFactor:     2,
		Jitter:            true,
		StepCeilingFactor: 2,
		Logger:            logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	byName := make(map[core.AgentName]core.Agent, len(agents))
	for _, a := range agents {
		byName[a.Name()] = a
	}

	return &Orchestrator{
		agents:        byName,
		policy:        policy,
		invokeTimeout: opts.InvokeTimeout,
		maxRetries:    opts.MaxRetries,
		backoffBase:   opts.BackoffBase,
		backoffFactor: opts.BackoffFactor,
		jitter:        opts.Jitter,
		stepCeiling:   opts.StepCeilingFactor * len(agents),
		logger:        opts.Logger,
		rand:          opts.Rand,
		activeRuns:    map[string]context.CancelFunc{},
		health:        newHealthRegistry(),
	}
}

// RunState is the orchestration state machine position.
type RunState string

// Run states.
const (
	StateCreated   RunState = "created"
	StateRunning   RunState = "running"
	StateCompleted RunState = "completed"
	StateFailed    RunState = "failed"
)

// RunStatus is the caller-facing outcome summary.
type RunStatus string

// Run statuses.
const (
	// StatusComplete means every agent contributed.
	StatusComplete RunStatus = "complete"
	// StatusPartial means some agents failed or were skipped but the run
	// still produced a motivation message.
	StatusPartial RunStatus = "partial"
	// StatusFatal means the run could not reach motivation or tripped a
	// policy violation. A best-effort plan is still returned.
	StatusFatal RunStatus = "fatal"
)

// Result is everything a run produces: the plan, the outcome summary and the
// full audit log.
type Result struct {
	RunID   string
	State   RunState
	Status  RunStatus
	Plan    plan.Plan
	Skipped []core.AgentName
	Failed  []core.AgentName
	Steps   int
	Log     []core.StepRecord
}

// CreateStudyPlan executes one orchestration run for the request. The
// returned Result is always non-nil and always carries a (possibly partial)
// Plan; the error is non-nil only when the caller's context was cancelled,
// in which case the Result holds the best-effort state at cancellation.
func (o *Orchestrator) CreateStudyPlan(ctx context.Context, req core.Request) (*Result, error) {
	runID := core.NewID()

	ctx, cancel := context.WithCancel(ctx)
	o.mu.Lock()
	o.activeRuns[runID] = cancel
	o.mu.Unlock()

	defer func() {
		cancel()
		o.mu.Lock()
		delete(o.activeRuns, runID)
		o.mu.Unlock()
	}()

	start := time.Now()
	runCtx := core.NewContext(req)
	state := StateRunning
	steps := 0
	var fatalErr error

loop:
	for state == StateRunning {
		if ctx.Err() != nil {
			break
		}

		if steps >= o.stepCeiling {
			fatalErr = core.NewPolicyViolation("step budget exhausted after %d steps", steps)
			state = StateFailed
			break
		}
		steps++

		action := o.policy.Next(runCtx.Snapshot())
		switch action.Kind {
		case core.ActionDone:
			state = StateCompleted

		case core.ActionSkip:
			for _, name := range action.Agents {
				runCtx.AppendStep(core.StepRecord{
					Agent:     name,
					Status:    core.StepSkipped,
					Reason:    action.Reason,
					Timestamp: time.Now().UTC(),
				})
				o.logger.Debug("agent skipped agent=%s run_id=%s reason=%q", name, runID, action.Reason)
			}

		case core.ActionRunOne, core.ActionRunParallel:
			for _, name := range action.Agents {
				if _, ok := o.agents[name]; !ok {
					fatalErr = core.NewPolicyViolation("routing policy returned unknown agent %q", name)
					state = StateFailed
					break loop
				}
			}
			o.runGroup(ctx, runID, runCtx, action.Agents)

		default:
			fatalErr = core.NewPolicyViolation("routing policy returned unknown action %q", action.Kind)
			state = StateFailed
		}
	}

	result := o.buildResult(runID, runCtx, state, steps)
	o.logger.Info("run finished run_id=%s status=%s steps=%d duration=%s", runID, result.Status, steps, time.Since(start))

	if fatalErr != nil {
		o.logger.Error("run failed run_id=%s: %v", runID, fatalErr)
	}

	if err := ctx.Err(); err != nil && state == StateRunning {
		return result, err
	}
	return result, nil
}

// Cancel aborts a running run by ID, propagating cancellation to all
// in-flight agent invocations.
func (o *Orchestrator) Cancel(runID string) error {
	o.mu.RLock()
	cancel, ok := o.activeRuns[runID]
	o.mu.RUnlock()

	if !ok {
		return fmt.Errorf("run %s not found", runID)
	}

	cancel()
	return nil
}

// AgentStatus reports last known health per registered agent, derived from
// StepRecord history across runs.
func (o *Orchestrator) AgentStatus() map[core.AgentName]Health {
	out := make(map[core.AgentName]Health, len(o.agents))
	for name := range o.agents {
		out[name] = o.health.get(name)
	}
	return out
}

// groupOutcome carries one agent's terminal result back to the merge point.
type groupOutcome struct {
	agent   core.AgentName
	contrib core.Contribution
	records []core.StepRecord
}

// runGroup invokes the named agents against a shared group-start snapshot
// and merges their outcomes serially in action order. For parallel groups
// all invocations are awaited before any merge happens (barrier semantics),
// so no agent ever observes a sibling's contribution.
func (o *Orchestrator) runGroup(ctx context.Context, runID string, runCtx *core.Context, names []core.AgentName) {
	snap := runCtx.Snapshot()
	outcomes := make([]groupOutcome, len(names))

	if len(names) == 1 {
		outcomes[0] = o.invokeWithRetry(ctx, runID, snap, names[0])
	} else {
		var wg sync.WaitGroup
		for i, name := range names {
			wg.Add(1)
			go func(i int, name core.AgentName) {
				defer wg.Done()
				outcomes[i] = o.invokeWithRetry(ctx, runID, snap, name)
			}(i, name)
		}
		wg.Wait()
	}

	// Serialized merge, owned by the orchestrator alone.
	for _, out := range outcomes {
		for _, rec := range out.records {
			runCtx.AppendStep(rec)
		}
		if out.contrib != nil {
			runCtx.Apply(out.contrib)
		}
		o.health.observe(out.agent, out.contrib != nil)
	}
}

// invokeWithRetry drives the attempt loop for one agent: invoke, record the
// attempt, back off and retry on transient failure until the budget runs
// out. Returns the contribution (nil on terminal failure) plus one
// StepRecord per attempt.
func (o *Orchestrator) invokeWithRetry(ctx context.Context, runID string, snap *core.Snapshot, name core.AgentName) groupOutcome {
	out := groupOutcome{agent: name}
	logger := o.logger

	for attempt := 1; ; attempt++ {
		start := time.Now()
		contrib, err := o.invokeOnce(ctx, name, snap)
		dur := time.Since(start)

		rec := core.StepRecord{
			Agent:            name,
			Attempt:          attempt,
			InputSnapshotRef: snap.ID(),
			Duration:         dur,
			Timestamp:        start.UTC(),
		}

		if err == nil {
			rec.Status = core.StepSuccess
			out.records = append(out.records, rec)
			out.contrib = contrib
			logger.Debug("agent succeeded agent=%s run_id=%s attempt=%d duration=%s", name, runID, attempt, dur)
			return out
		}

		kind := core.KindOf(err)
		rec.Status = core.StepFailed
		rec.ErrorKind = kind
		rec.Reason = err.Error()
		out.records = append(out.records, rec)
		logger.Warn("agent failed agent=%s run_id=%s attempt=%d kind=%s: %v", name, runID, attempt, kind, err)

		if !kind.Retryable() || attempt > o.maxRetries || ctx.Err() != nil {
			return out
		}

		select {
		case <-ctx.Done():
			return out
		case <-time.After(o.backoff(attempt)):
		}
	}
}

// invokeOnce runs a single attempt under the per-invocation timeout. A
// deadline overrun is folded into a typed Timeout failure; parent
// cancellation surfaces as a non-retryable Unavailable.
func (o *Orchestrator) invokeOnce(ctx context.Context, name core.AgentName, snap *core.Snapshot) (core.Contribution, error) {
	agent := o.agents[name]

	ictx, cancel := context.WithTimeout(ctx, o.invokeTimeout)
	defer cancel()

	type invocation struct {
		contrib core.Contribution
		err     error
	}
	// Buffered so an agent that ignores cancellation cannot block forever.
	done := make(chan invocation, 1)

	go func() {
		contrib, err := agent.Invoke(ictx, snap)
		done <- invocation{contrib, err}
	}()

	select {
	case <-ictx.Done():
		if errors.Is(ictx.Err(), context.DeadlineExceeded) {
			return nil, core.NewTimeout(name, ictx.Err())
		}
		return nil, core.NewUnavailable(name, ictx.Err())
	case inv := <-done:
		if inv.err != nil {
			return nil, inv.err
		}
		if inv.contrib == nil {
			return nil, core.NewInvalidInput(name, "agent returned no contribution and no error")
		}
		return inv.contrib, nil
	}
}

// backoff returns the delay before retry number attempt (1-based).
func (o *Orchestrator) backoff(attempt int) time.Duration {
	d := float64(o.backoffBase) * math.Pow(o.backoffFactor, float64(attempt-1))
	if o.jitter {
		o.randMu.Lock()
		d = d/2 + o.rand.Float64()*d/2
		o.randMu.Unlock()
	}
	return time.Duration(d)
}

// buildResult aggregates the best-effort plan and outcome summary. Partial
// output always beats an opaque error: even fatal runs carry whatever plan
// the accumulated contributions support.
func (o *Orchestrator) buildResult(runID string, runCtx *core.Context, state RunState, steps int) *Result {
	snap := runCtx.Snapshot()

	var skipped, failed []core.AgentName
	contributed := 0
	for _, name := range core.AllAgents() {
		if _, ok := o.agents[name]; !ok {
			continue
		}
		if snap.Has(name) {
			contributed++
			continue
		}
		switch st, _ := snap.Outcome(name); st {
		case core.StepSkipped:
			skipped = append(skipped, name)
		case core.StepFailed:
			failed = append(failed, name)
		}
	}

	status := StatusPartial
	if state == StateFailed || !snap.Has(core.AgentMotivation) {
		status = StatusFatal
		state = StateFailed
	} else if contributed == len(o.agents) {
		status = StatusComplete
	}

	return &Result{
		RunID:   runID,
		State:   state,
		Status:  status,
		Plan:    plan.Aggregate(snap),
		Skipped: skipped,
		Failed:  failed,
		Steps:   steps,
		Log:     runCtx.Log(),
	}
}
