package agent

import (
	"context"

	"github.com/studymesh/studymesh/core"
)

// Fatigue indicator labels reported by emotion sensors.
const (
	IndicatorTiredEyes = "tired_eyes"
	IndicatorYawning   = "yawning"
)

// EmotionSample is one reading from an emotion-signal service: the dominant
// emotion, visible fatigue indicators, and today's activity level.
type EmotionSample struct {
	Emotion           string
	FatigueIndicators []string
	StepsToday        int
}

// EmotionSensor samples the student's current state. Real implementations
// call an emotion-analysis service; the static sensor replays a fixed sample.
type EmotionSensor interface {
	Sample(ctx context.Context) (EmotionSample, error)
}

// StaticEmotionSensor is the deterministic stub sensor.
type StaticEmotionSensor struct {
	sample EmotionSample
}

// NewStaticEmotionSensor creates a stub sensor reporting a neutral, rested
// student.
func NewStaticEmotionSensor() *StaticEmotionSensor {
	return &StaticEmotionSensor{
		sample: EmotionSample{Emotion: "neutral", StepsToday: 8500},
	}
}

// SetSample overrides the replayed sample.
func (s *StaticEmotionSensor) SetSample(sample EmotionSample) { s.sample = sample }

// Sample implements EmotionSensor.
func (s *StaticEmotionSensor) Sample(context.Context) (EmotionSample, error) {
	return s.sample, nil
}

// WellnessAgent turns an emotion sample into a fatigue score and a study
// recommendation. It requires the personalization profile (it runs in the
// parallel group gated on personalization).
type WellnessAgent struct {
	sensor EmotionSensor
}

// NewWellnessAgent creates the agent around an emotion sensor.
func NewWellnessAgent(sensor EmotionSensor) *WellnessAgent {
	return &WellnessAgent{sensor: sensor}
}

// Name implements core.Agent.
func (a *WellnessAgent) Name() core.AgentName { return core.AgentWellness }

// Invoke implements core.Agent.
func (a *WellnessAgent) Invoke(ctx context.Context, snap *core.Snapshot) (core.Contribution, error) {
	if !snap.Has(core.AgentPersonalization) {
		return nil, core.NewInvalidInput(a.Name(), "personalization profile missing from context")
	}

	sample, err := a.sensor.Sample(ctx)
	if err != nil {
		return nil, core.NewUnavailable(a.Name(), err)
	}

	fatigue := fatigueLevel(sample)

	return core.WellnessAssessment{
		FatigueLevel:   fatigue,
		EmotionalState: sample.Emotion,
		Recommendation: recommendation(fatigue),
	}, nil
}

// fatigueLevel scores fatigue in [0,1] from a 0.3 baseline: visible
// indicators and low activity add, alert emotions subtract.
func fatigueLevel(sample EmotionSample) float64 {
	fatigue := 0.3

	for _, ind := range sample.FatigueIndicators {
		switch ind {
		case IndicatorTiredEyes:
			fatigue += 0.3
		case IndicatorYawning:
			fatigue += 0.2
		}
	}

	if sample.StepsToday > 0 && sample.StepsToday < 3000 {
		fatigue += 0.2
	}

	switch sample.Emotion {
	case "focused", "determined", "curious":
		fatigue -= 0.2
	case "tired", "sleepy", "bored":
		fatigue += 0.4
	}

	return clamp(fatigue, 0, 1)
}

func recommendation(fatigue float64) string {
	switch {
	case fatigue > 0.7:
		return "High fatigue - take a 15-minute rest before the first session"
	case fatigue > 0.5:
		return "Medium fatigue - plan a stretch break in every session"
	default:
		return "Moderate energy - schedule a short break to stay fresh"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
