package routing

import (
	"fmt"
	"strings"

	"github.com/studymesh/studymesh/core"
)

// defaultPrerequisites maps each agent to the contributions it strictly
// requires. Motivation is deliberately absent: it must run regardless of
// upstream outcomes.
func defaultPrerequisites() map[core.AgentName][]core.AgentName {
	return map[core.AgentName][]core.AgentName{
		core.AgentLearning:   {core.AgentPersonalization},
		core.AgentWellness:   {core.AgentPersonalization},
		core.AgentAssessment: {core.AgentLearning},
		core.AgentSchedule:   {core.AgentWellness, core.AgentAssessment},
	}
}

// Policy decides which agent(s) run next. Next is a pure function of the
// snapshot: identical snapshots yield identical decisions, which makes the
// whole topology replayable. The zero value is not usable; construct with
// NewPolicy.
type Policy struct {
	prereqs map[core.AgentName][]core.AgentName
	group   []core.AgentName
}

// NewPolicy returns the default study-plan topology.
func NewPolicy() *Policy {
	return &Policy{
		prereqs: defaultPrerequisites(),
		group:   []core.AgentName{core.AgentLearning, core.AgentWellness},
	}
}

// Next maps the snapshot to the next action. The decision procedure, in
// order: terminate once motivation is resolved; establish the
// personalization profile; propagate skips for agents whose prerequisites
// failed; run the learning/wellness parallel group; run assessment, then
// schedule; finally run motivation.
func (p *Policy) Next(snap *core.Snapshot) core.NextAction {
	if resolved(snap, core.AgentMotivation) {
		return core.Done()
	}

	if !resolved(snap, core.AgentPersonalization) {
		return core.RunOne(core.AgentPersonalization)
	}

	if skips, reason := p.skipClosure(snap); len(skips) > 0 {
		return core.Skip(reason, skips...)
	}

	var group []core.AgentName
	for _, name := range p.group {
		if !resolved(snap, name) {
			group = append(group, name)
		}
	}
	switch len(group) {
	case 2:
		return core.RunParallel(group...)
	case 1:
		return core.RunOne(group[0])
	}

	for _, name := range []core.AgentName{core.AgentAssessment, core.AgentSchedule} {
		if !resolved(snap, name) {
			return core.RunOne(name)
		}
	}

	return core.RunOne(core.AgentMotivation)
}

// skipClosure computes the transitive set of unresolved agents with a failed
// or skipped prerequisite, treating agents already in the set as skipped so
// that propagation completes in one decision. Results follow canonical agent
// order.
func (p *Policy) skipClosure(snap *core.Snapshot) ([]core.AgentName, string) {
	pending := map[core.AgentName]string{}

	for changed := true; changed; {
		changed = false
		for _, name := range core.AllAgents() {
			if _, queued := pending[name]; queued || resolved(snap, name) {
				continue
			}
			for _, prereq := range p.prereqs[name] {
				if failedOrSkipped(snap, prereq) || pending[prereq] != "" {
					pending[name] = fmt.Sprintf("prerequisite %s did not produce a contribution", prereq)
					changed = true
					break
				}
			}
		}
	}

	if len(pending) == 0 {
		return nil, ""
	}

	var names []core.AgentName
	var reasons []string
	for _, name := range core.AllAgents() {
		if r, ok := pending[name]; ok {
			names = append(names, name)
			reasons = append(reasons, r)
		}
	}
	return names, strings.Join(dedupe(reasons), "; ")
}

// resolved reports whether the agent needs no further scheduling: it either
// contributed or reached a terminal failed/skipped outcome. Failed records
// visible to the policy are terminal because the orchestrator exhausts
// retries before consulting it again.
func resolved(snap *core.Snapshot, name core.AgentName) bool {
	if snap.Has(name) {
		return true
	}
	st, ok := snap.Outcome(name)
	return ok && (st == core.StepFailed || st == core.StepSkipped)
}

func failedOrSkipped(snap *core.Snapshot, name core.AgentName) bool {
	st, ok := snap.Outcome(name)
	return ok && (st == core.StepFailed || st == core.StepSkipped) && !snap.Has(name)
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
