package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymesh/studymesh/core"
)

// harness builds up a run context step by step so each policy decision can be
// asserted against a realistic snapshot.
type harness struct {
	ctx *core.Context
}

func newHarness() *harness {
	return &harness{ctx: core.NewContext(core.Request{Goal: "learn go"})}
}

func (h *harness) succeed(name core.AgentName, contrib core.Contribution) {
	h.ctx.AppendStep(core.StepRecord{Agent: name, Attempt: 1, Status: core.StepSuccess})
	h.ctx.Apply(contrib)
}

func (h *harness) fail(name core.AgentName) {
	h.ctx.AppendStep(core.StepRecord{Agent: name, Attempt: 1, Status: core.StepFailed, ErrorKind: core.FailureUnavailable})
}

func (h *harness) skip(name core.AgentName) {
	h.ctx.AppendStep(core.StepRecord{Agent: name, Status: core.StepSkipped})
}

func (h *harness) next(p *Policy) core.NextAction {
	return p.Next(h.ctx.Snapshot())
}

func TestPolicy_HappyPathProgression(t *testing.T) {
	p := NewPolicy()
	h := newHarness()

	// Fresh run starts with personalization.
	action := h.next(p)
	assert.Equal(t, core.ActionRunOne, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentPersonalization}, action.Agents)

	// Profile in place: learning and wellness run concurrently.
	h.succeed(core.AgentPersonalization, core.PersonalizationProfile{LearningStyle: core.StyleVisual, Pace: core.PaceModerate})
	action = h.next(p)
	assert.Equal(t, core.ActionRunParallel, action.Kind)
	assert.ElementsMatch(t, []core.AgentName{core.AgentLearning, core.AgentWellness}, action.Agents)

	// Group done: assessment next, then schedule, then motivation.
	h.succeed(core.AgentLearning, core.LearningResources{Resources: []core.Resource{{Title: "Go Tutorial"}}})
	h.succeed(core.AgentWellness, core.WellnessAssessment{FatigueLevel: 0.3})
	action = h.next(p)
	require.Equal(t, core.ActionRunOne, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentAssessment}, action.Agents)

	h.succeed(core.AgentAssessment, core.AssessmentQuestions{Questions: []core.Question{{Question: "q"}}})
	action = h.next(p)
	require.Equal(t, core.ActionRunOne, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentSchedule}, action.Agents)

	h.succeed(core.AgentSchedule, core.SchedulePlan{})
	action = h.next(p)
	require.Equal(t, core.ActionRunOne, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentMotivation}, action.Agents)

	h.succeed(core.AgentMotivation, core.MotivationMessage{Text: "go"})
	assert.Equal(t, core.ActionDone, h.next(p).Kind)
}

func TestPolicy_PersonalizationFailureSkipsTransitively(t *testing.T) {
	p := NewPolicy()
	h := newHarness()

	h.fail(core.AgentPersonalization)

	// Every downstream agent except motivation is skipped in one decision.
	action := h.next(p)
	require.Equal(t, core.ActionSkip, action.Kind)
	assert.Equal(t, []core.AgentName{
		core.AgentLearning,
		core.AgentWellness,
		core.AgentAssessment,
		core.AgentSchedule,
	}, action.Agents)
	assert.Contains(t, action.Reason, "personalization")

	// After recording the skips, motivation still runs.
	for _, name := range action.Agents {
		h.skip(name)
	}
	action = h.next(p)
	require.Equal(t, core.ActionRunOne, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentMotivation}, action.Agents)
}

func TestPolicy_LearningFailureSkipsAssessmentAndSchedule(t *testing.T) {
	p := NewPolicy()
	h := newHarness()

	h.succeed(core.AgentPersonalization, core.PersonalizationProfile{})
	h.fail(core.AgentLearning)
	h.succeed(core.AgentWellness, core.WellnessAssessment{FatigueLevel: 0.3})

	// Assessment loses its prerequisite directly; schedule transitively.
	action := h.next(p)
	require.Equal(t, core.ActionSkip, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentAssessment, core.AgentSchedule}, action.Agents)
}

func TestPolicy_WellnessFailureSkipsScheduleOnly(t *testing.T) {
	p := NewPolicy()
	h := newHarness()

	h.succeed(core.AgentPersonalization, core.PersonalizationProfile{})
	h.succeed(core.AgentLearning, core.LearningResources{Resources: []core.Resource{{Title: "t"}}})
	h.fail(core.AgentWellness)

	// Assessment is unaffected and runs before the schedule skip matters.
	action := h.next(p)
	require.Equal(t, core.ActionSkip, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentSchedule}, action.Agents)

	h.skip(core.AgentSchedule)
	action = h.next(p)
	require.Equal(t, core.ActionRunOne, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentAssessment}, action.Agents)
}

func TestPolicy_SingleGroupMemberRunsAlone(t *testing.T) {
	p := NewPolicy()
	h := newHarness()

	h.succeed(core.AgentPersonalization, core.PersonalizationProfile{})
	h.succeed(core.AgentLearning, core.LearningResources{})

	// Only wellness is outstanding in the group; no parallelism needed.
	action := h.next(p)
	require.Equal(t, core.ActionRunOne, action.Kind)
	assert.Equal(t, []core.AgentName{core.AgentWellness}, action.Agents)
}

func TestPolicy_Deterministic(t *testing.T) {
	p := NewPolicy()
	h := newHarness()
	h.succeed(core.AgentPersonalization, core.PersonalizationProfile{})

	snap := h.ctx.Snapshot()
	first := p.Next(snap)
	second := p.Next(snap)
	assert.Equal(t, first, second)
}
