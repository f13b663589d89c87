package core

import "context"

// Agent is the capability contract every specialist fulfills: given a
// read-only snapshot of the run context, return a typed Contribution or a
// typed Failure. Invoke must not mutate the snapshot, must respect context
// cancellation, and is expected to complete within the orchestrator's
// per-invocation timeout.
//
// Side effects (calling a resource index, a quiz generator, a sensor) are the
// agent's private concern behind its collaborator interface; the orchestrator
// only observes the returned value or error.
type Agent interface {
	Name() AgentName
	Invoke(ctx context.Context, snap *Snapshot) (Contribution, error)
}
