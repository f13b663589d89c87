package studymesh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymesh/studymesh/config"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/orchestrator"
)

func TestStudyMesh_EndToEnd(t *testing.T) {
	mesh := New()

	result, err := mesh.CreateStudyPlan(context.Background(), core.Request{
		Goal: "Help me prepare for my Machine Learning exam",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, orchestrator.StatusComplete, result.Status)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Skipped)

	// Default stubs: rested student, three resources over 90-minute sessions.
	require.Len(t, result.Plan.Days, 2)
	assert.Equal(t, 1, result.Plan.BreakCount())
	assert.Contains(t, result.Plan.MotivationMessage, "machine learning")
	assert.NotEmpty(t, result.Plan.WellnessNote)

	// Every study day carries resource attribution from the learning agent.
	for _, day := range result.Plan.Days {
		for _, task := range day.Tasks {
			if !task.IsBreak && task.Source == "" {
				assert.Contains(t, task.Title, "Practice quiz")
			}
		}
	}
}

func TestStudyMesh_ConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Assessment.NumQuestions = 5

	mesh := New(func(o *Options) {
		o.Config = cfg
	})

	result, err := mesh.CreateStudyPlan(context.Background(), core.Request{Goal: "i want to learn go"})
	require.NoError(t, err)

	// The quiz size flows through to the practice task on the last day.
	lastDay := result.Plan.Days[len(result.Plan.Days)-1]
	assert.Equal(t, "Practice quiz (5 questions)", lastDay.Tasks[len(lastDay.Tasks)-1].Title)
}

func TestStudyMesh_AgentStatusAfterRun(t *testing.T) {
	mesh := New()

	_, err := mesh.CreateStudyPlan(context.Background(), core.Request{Goal: "i want to learn go"})
	require.NoError(t, err)

	status := mesh.AgentStatus()
	require.Len(t, status, len(core.AllAgents()))
	for name, h := range status {
		assert.Equalf(t, orchestrator.HealthHealthy, h, "agent %s", name)
	}
}

func TestDefaultAgents_CoversAllNames(t *testing.T) {
	agents := DefaultAgents(config.Default())
	require.Len(t, agents, len(core.AllAgents()))

	seen := map[core.AgentName]bool{}
	for _, a := range agents {
		seen[a.Name()] = true
	}
	for _, name := range core.AllAgents() {
		assert.Truef(t, seen[name], "agent %s", name)
	}
}
