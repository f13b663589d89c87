// Package core provides the foundational domain types, interfaces and
// execution state used by StudyMesh. It defines the core abstractions for:
//
//   - Agents (specialist capability units producing one typed Contribution)
//   - Requests (the immutable student ask plus structured hints)
//   - Contributions (typed, immutable agent outputs)
//   - Context / Snapshot (the per-run accumulating record and its read-only
//     view handed to agents)
//   - StepRecord (the total-ordered audit trail of invocation attempts)
//   - NextAction (the tagged routing decision variants)
//   - Failure (the typed error taxonomy shared by agents and the orchestrator)
//
// The package intentionally keeps implementation concerns (routing topology,
// executor mechanics, concrete agents, plan projection) out of scope, exposing
// small interfaces and value types so those layers stay independently testable.
package core
