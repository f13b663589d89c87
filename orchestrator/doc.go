// Package orchestrator implements the graph executor driving a study-plan
// run. It owns the routing loop: ask the policy for the next action, invoke
// the named agent(s), merge their contributions into the run context, and
// repeat until the policy says done or the defensive step ceiling trips.
//
// # Responsibilities (abridged)
//
//   - Per-invocation timeout enforcement and typed failure capture
//   - Retry with exponential, jittered backoff for transient failures
//   - Parallel group execution with barrier semantics and a single
//     serialized merge point (agents only ever see group-start snapshots)
//   - Skip recording as directed by the routing policy
//   - Run lifecycle (Created -> Running -> Completed/Failed), cancellation
//     propagation, and the active-run registry
//   - Best-effort plan aggregation: the caller always receives a Plan, even
//     for fatal runs
//   - The agent health registry backing AgentStatus
//
// Orchestrator instances are safe for concurrent use; every run carries its
// own Context and no state is shared between runs except the health registry.
package orchestrator
