// Package plan defines the user-facing study plan and the pure projection
// that assembles it from a run snapshot. Aggregation is best-effort:
// contributions from skipped agents are simply omitted, so the student sees
// a smaller but internally consistent plan, never an error artifact.
package plan
