// Package routing implements the study-plan routing policy: a pure function
// from the current run state to the next agents to invoke.
//
// The topology is held as data (a prerequisite table plus one parallel group)
// rather than control flow, so the graph's shape is testable in isolation
// from agent execution:
//
//	personalization
//	   ├── learning ──┐
//	   └── wellness   ├── assessment ── schedule ──┐
//	                  └────────────────────────────┴── motivation
//
// Learning and wellness run as one parallel group once personalization has
// resolved. Motivation has no prerequisites and always runs last, even when
// everything upstream failed, so every run ends with an encouragement
// message. Agents whose prerequisites failed terminally are named in an
// explicit Skip decision; propagation is transitive and computed in a single
// closure pass, keeping StepRecord logs deterministic.
package routing
