package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymesh/studymesh/core"
)

func fullContext() *core.Context {
	c := core.NewContext(core.Request{Goal: "learn go"})
	c.Apply(core.PersonalizationProfile{LearningStyle: core.StyleVisual, Pace: core.PaceModerate})
	c.Apply(core.LearningResources{Resources: []core.Resource{
		{Title: "Go Full Course", Source: "YouTube"},
		{Title: "Complete Go Tutorial", Source: "GeeksforGeeks"},
	}})
	c.Apply(core.WellnessAssessment{FatigueLevel: 0.3, Recommendation: "Moderate energy - schedule a short break to stay fresh"})
	c.Apply(core.AssessmentQuestions{Questions: make([]core.Question, 3)})
	c.Apply(core.SchedulePlan{Tasks: []core.ScheduledTask{
		{Day: 1, Task: "Study go - part 1 of 2", DurationMinutes: 90},
		{Day: 1, Task: "Short walk", DurationMinutes: 5, IsBreak: true},
		{Day: 2, Task: "Study go - part 2 of 2", DurationMinutes: 90},
	}})
	c.Apply(core.MotivationMessage{Text: "Keep going!"})
	return c
}

func TestAggregate_FullRun(t *testing.T) {
	p := Aggregate(fullContext().Snapshot())

	require.Len(t, p.Days, 2)
	assert.Equal(t, 1, p.Days[0].Day)
	assert.Equal(t, 2, p.Days[1].Day)

	// Day 1: study task with resource attribution, then the break.
	require.Len(t, p.Days[0].Tasks, 2)
	assert.Equal(t, "YouTube", p.Days[0].Tasks[0].Source)
	assert.True(t, p.Days[0].Tasks[1].IsBreak)
	assert.Empty(t, p.Days[0].Tasks[1].Source)

	// Day 2: second study task plus the appended practice quiz.
	require.Len(t, p.Days[1].Tasks, 2)
	assert.Equal(t, "GeeksforGeeks", p.Days[1].Tasks[0].Source)
	assert.Equal(t, "Practice quiz (3 questions)", p.Days[1].Tasks[1].Title)
	assert.Equal(t, 6, p.Days[1].Tasks[1].DurationMinutes)

	assert.Equal(t, "Moderate energy - schedule a short break to stay fresh", p.WellnessNote)
	assert.Equal(t, "Keep going!", p.MotivationMessage)
}

func TestAggregate_Deterministic(t *testing.T) {
	snap := fullContext().Snapshot()
	assert.Equal(t, Aggregate(snap), Aggregate(snap))
}

func TestAggregate_NoScheduleFallsBackToResourceList(t *testing.T) {
	c := core.NewContext(core.Request{Goal: "learn go"})
	c.Apply(core.LearningResources{Resources: []core.Resource{
		{Title: "Go Full Course", Source: "YouTube"},
		{Title: "Complete Go Tutorial", Source: "GeeksforGeeks"},
	}})
	c.Apply(core.MotivationMessage{Text: "Stick with it."})

	p := Aggregate(c.Snapshot())

	require.Len(t, p.Days, 1)
	require.Len(t, p.Days[0].Tasks, 2)
	assert.Equal(t, "Review Go Full Course", p.Days[0].Tasks[0].Title)
	assert.Equal(t, fallbackTaskMinutes, p.Days[0].Tasks[0].DurationMinutes)
	assert.Equal(t, "Stick with it.", p.MotivationMessage)
	assert.Empty(t, p.WellnessNote)
}

func TestAggregate_MotivationOnly(t *testing.T) {
	c := core.NewContext(core.Request{Goal: "learn go"})
	c.Apply(core.MotivationMessage{Text: "You can do this."})

	p := Aggregate(c.Snapshot())

	assert.Empty(t, p.Days)
	assert.Equal(t, "You can do this.", p.MotivationMessage)
}

func TestAggregate_EmptyQuizAddsNoPracticeTask(t *testing.T) {
	c := core.NewContext(core.Request{Goal: "learn go"})
	c.Apply(core.SchedulePlan{Tasks: []core.ScheduledTask{{Day: 1, Task: "Study go - part 1 of 1", DurationMinutes: 60}}})
	c.Apply(core.AssessmentQuestions{})

	p := Aggregate(c.Snapshot())

	require.Len(t, p.Days, 1)
	assert.Len(t, p.Days[0].Tasks, 1)
}

func TestPlan_TaskAndBreakCounts(t *testing.T) {
	p := Aggregate(fullContext().Snapshot())
	assert.Equal(t, 4, p.TaskCount())
	assert.Equal(t, 1, p.BreakCount())
}
