package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Topic(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"subject wins", Request{Goal: "help me with my biology exam", Subject: "Chemistry"}, "Chemistry"},
		{"prefix and exam stripped", Request{Goal: "Help me prepare for my Machine Learning exam"}, "machine learning"},
		{"test suffix stripped", Request{Goal: "help me with my calculus test"}, "calculus"},
		{"learn prefix", Request{Goal: "I want to learn Go"}, "go"},
		{"plain goal", Request{Goal: "organic chemistry"}, "organic chemistry"},
		{"empty goal", Request{}, "general studies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Topic())
		})
	}
}

func TestContext_ApplyDerivesSignals(t *testing.T) {
	c := NewContext(Request{Goal: "learn go"})

	assert.False(t, c.Signals().FatigueKnown)

	c.Apply(PersonalizationProfile{LearningStyle: StyleAuditory, Pace: PaceFast})
	c.Apply(WellnessAssessment{FatigueLevel: 0.6, EmotionalState: "tired"})

	s := c.Signals()
	assert.Equal(t, StyleAuditory, s.LearningStyle)
	assert.Equal(t, PaceFast, s.Pace)
	assert.True(t, s.FatigueKnown)
	assert.InDelta(t, 0.6, s.FatigueLevel, 1e-9)

	contrib, ok := c.Contribution(AgentWellness)
	require.True(t, ok)
	assert.Equal(t, AgentWellness, contrib.Producer())
}

func TestContext_Outcome(t *testing.T) {
	c := NewContext(Request{})

	_, ok := c.Outcome(AgentLearning)
	assert.False(t, ok)

	// Two attempts: the latest record wins.
	c.AppendStep(StepRecord{Agent: AgentLearning, Attempt: 1, Status: StepFailed})
	c.AppendStep(StepRecord{Agent: AgentLearning, Attempt: 2, Status: StepSuccess})

	st, ok := c.Outcome(AgentLearning)
	require.True(t, ok)
	assert.Equal(t, StepSuccess, st)
}

func TestContext_LogReturnsCopy(t *testing.T) {
	c := NewContext(Request{})
	c.AppendStep(StepRecord{Agent: AgentPersonalization, Status: StepSuccess, Timestamp: time.Now()})

	log := c.Log()
	require.Len(t, log, 1)
	log[0].Agent = AgentMotivation

	assert.Equal(t, AgentPersonalization, c.Log()[0].Agent)
}

func TestSnapshot_IsolatedFromLaterMutation(t *testing.T) {
	c := NewContext(Request{Goal: "learn go"})
	c.Apply(PersonalizationProfile{LearningStyle: StyleVisual, Pace: PaceModerate})

	snap := c.Snapshot()
	require.NotEmpty(t, snap.ID())

	// Mutations after the snapshot must not be visible through it.
	c.Apply(WellnessAssessment{FatigueLevel: 0.9})
	c.AppendStep(StepRecord{Agent: AgentWellness, Status: StepSuccess})

	assert.True(t, snap.Has(AgentPersonalization))
	assert.False(t, snap.Has(AgentWellness))
	assert.False(t, snap.Signals().FatigueKnown)

	_, ok := snap.Outcome(AgentWellness)
	assert.False(t, ok)
}

func TestSnapshot_DistinctIDs(t *testing.T) {
	c := NewContext(Request{})
	assert.NotEqual(t, c.Snapshot().ID(), c.Snapshot().ID())
}
