package agent

import (
	"context"
	"fmt"

	"github.com/studymesh/studymesh/core"
)

// MotivationInput summarizes the run for message composition.
type MotivationInput struct {
	Topic        string
	Fatigued     bool
	PlanComplete bool
}

// MessageSource composes the closing encouragement. Real implementations may
// call a text-generation service; the catalog source picks from fixed
// templates.
type MessageSource interface {
	Compose(ctx context.Context, in MotivationInput) (string, error)
}

// CatalogMessageSource is the deterministic stub source.
type CatalogMessageSource struct{}

// NewCatalogMessageSource creates the stub source.
func NewCatalogMessageSource() *CatalogMessageSource { return &CatalogMessageSource{} }

// Compose implements MessageSource.
func (CatalogMessageSource) Compose(_ context.Context, in MotivationInput) (string, error) {
	msg := fmt.Sprintf("Keep going! Every session brings you closer to mastering %s.", in.Topic)
	if !in.PlanComplete {
		msg = fmt.Sprintf("Starting is the hardest part, and you already did - stick with %s and the rest will follow.", in.Topic)
	}
	if in.Fatigued {
		msg += " Remember to take care of yourself too!"
	}
	return msg, nil
}

// MotivationAgent closes every run with an encouragement message. It has no
// prerequisites and runs last regardless of upstream outcomes, so even a run
// where every other agent failed still ends on a personal note.
type MotivationAgent struct {
	source MessageSource
}

// NewMotivationAgent creates the agent around a message source.
func NewMotivationAgent(source MessageSource) *MotivationAgent {
	return &MotivationAgent{source: source}
}

// Name implements core.Agent.
func (a *MotivationAgent) Name() core.AgentName { return core.AgentMotivation }

// Invoke implements core.Agent.
func (a *MotivationAgent) Invoke(ctx context.Context, snap *core.Snapshot) (core.Contribution, error) {
	signals := snap.Signals()

	in := MotivationInput{
		Topic:        snap.Request().Topic(),
		Fatigued:     signals.FatigueKnown && signals.FatigueLevel > 0.5,
		PlanComplete: snap.Has(core.AgentSchedule),
	}

	text, err := a.source.Compose(ctx, in)
	if err != nil {
		return nil, core.NewUnavailable(a.Name(), err)
	}

	return core.MotivationMessage{Text: text}, nil
}
