package core

import (
	"strings"
	"time"
)

// AgentName identifies one of the specialist agents in the routing topology.
type AgentName string

// The fixed set of specialist agents.
const (
	AgentPersonalization AgentName = "personalization"
	AgentLearning        AgentName = "learning"
	AgentWellness        AgentName = "wellness"
	AgentAssessment      AgentName = "assessment"
	AgentSchedule        AgentName = "schedule"
	AgentMotivation      AgentName = "motivation"
)

// AllAgents returns the specialist agents in canonical topology order. The
// order is load-bearing: routing and merge operations iterate it to keep runs
// deterministic.
func AllAgents() []AgentName {
	return []AgentName{
		AgentPersonalization,
		AgentLearning,
		AgentWellness,
		AgentAssessment,
		AgentSchedule,
		AgentMotivation,
	}
}

// Difficulty grades study material.
type Difficulty string

// Difficulty levels, ordered easiest first.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Request is the student's ask. It is immutable once accepted: the
// orchestrator copies it into the run Context and never writes it again.
type Request struct {
	// Goal is the free-text request, e.g. "Help me prepare for my Machine
	// Learning exam".
	Goal string
	// Subject optionally pins the topic when the goal text is ambiguous.
	Subject string
	// Deadline optionally bounds the schedule horizon.
	Deadline *time.Time
	// KnownDifficulty is an optional hint about the material's difficulty.
	KnownDifficulty Difficulty
	// StudentID keys collaborator lookups (preference store, availability).
	StudentID string
}

// goalPrefixes are conversational lead-ins stripped when deriving the topic.
var goalPrefixes = []string{
	"help me prepare for my",
	"help me prepare for",
	"help me with my",
	"help me with",
	"i want to learn",
	"i need to study",
}

// Topic derives the study topic from the request. The Subject hint wins when
// present; otherwise the goal text is used with conversational prefixes and a
// trailing "exam"/"test" stripped.
func (r Request) Topic() string {
	if r.Subject != "" {
		return r.Subject
	}

	topic := strings.ToLower(strings.TrimSpace(r.Goal))
	for _, p := range goalPrefixes {
		if rest, ok := strings.CutPrefix(topic, p); ok {
			topic = strings.TrimSpace(rest)
			break
		}
	}
	for _, suffix := range []string{" exam", " test", " quiz"} {
		topic = strings.TrimSuffix(topic, suffix)
	}

	if topic == "" {
		return "general studies"
	}
	return topic
}
