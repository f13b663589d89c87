package core

// ActionKind tags the routing policy's decision variants.
type ActionKind string

// Action kinds.
const (
	ActionRunOne      ActionKind = "run_one"
	ActionRunParallel ActionKind = "run_parallel"
	ActionSkip        ActionKind = "skip"
	ActionDone        ActionKind = "done"
)

// NextAction is the routing policy's decision for the current context state:
// run one agent, run a group concurrently, record a set of agents as skipped,
// or terminate. Skip exists so that downstream propagation is explicit policy
// output rather than executor heuristics: the policy names the agents whose
// prerequisites failed, the orchestrator records them.
type NextAction struct {
	Kind   ActionKind
	Agents []AgentName
	// Reason explains a Skip decision and is copied into the StepRecords.
	Reason string
}

// RunOne schedules a single agent.
func RunOne(name AgentName) NextAction {
	return NextAction{Kind: ActionRunOne, Agents: []AgentName{name}}
}

// RunParallel schedules a group of agents to run concurrently with barrier
// semantics: all are awaited before the policy is consulted again.
func RunParallel(names ...AgentName) NextAction {
	return NextAction{Kind: ActionRunParallel, Agents: names}
}

// Skip marks agents whose prerequisites failed terminally. They are recorded
// with StepSkipped and never invoked for this run.
func Skip(reason string, names ...AgentName) NextAction {
	return NextAction{Kind: ActionSkip, Agents: names, Reason: reason}
}

// Done terminates the routing loop.
func Done() NextAction {
	return NextAction{Kind: ActionDone}
}
