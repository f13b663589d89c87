// Package agent contains the six specialist agent implementations and their
// collaborator seams. Each agent follows the same shape:
//
//  1. Validate that required prior contributions are present in the snapshot
//     (missing prerequisites are an invalid-input failure — a routing bug,
//     never retried).
//  2. Call its collaborator interface (resource index, emotion sensor, quiz
//     generator, preference store, availability service, message source).
//  3. Map the result into the agent's typed Contribution.
//
// Every collaborator interface ships with a deterministic in-package stub,
// which is the explicit substitution seam: the orchestration core behaves
// identically whether an answer comes from a real backend or from the stub,
// because it only observes the Contribution/Failure contract.
package agent
