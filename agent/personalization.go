package agent

import (
	"context"

	"github.com/studymesh/studymesh/core"
)

// StudentPreferences is the raw preference-store record for one student.
type StudentPreferences struct {
	LearningStyle core.LearningStyle
	Pace          core.Pace
}

// PreferenceStore looks up stored learning preferences. Implementations may
// back onto a database, a user-profile service, or the static stub.
type PreferenceStore interface {
	Profile(ctx context.Context, studentID string) (StudentPreferences, error)
}

// StaticPreferenceStore is the deterministic stub store: known students map
// to fixed preferences, everyone else gets the fallback profile.
type StaticPreferenceStore struct {
	profiles map[string]StudentPreferences
	fallback StudentPreferences
}

// NewStaticPreferenceStore creates a stub store with a visual/moderate
// fallback profile.
func NewStaticPreferenceStore() *StaticPreferenceStore {
	return &StaticPreferenceStore{
		profiles: map[string]StudentPreferences{},
		fallback: StudentPreferences{LearningStyle: core.StyleVisual, Pace: core.PaceModerate},
	}
}

// Set registers a fixed profile for a student.
func (s *StaticPreferenceStore) Set(studentID string, prefs StudentPreferences) {
	s.profiles[studentID] = prefs
}

// Profile implements PreferenceStore.
func (s *StaticPreferenceStore) Profile(_ context.Context, studentID string) (StudentPreferences, error) {
	if p, ok := s.profiles[studentID]; ok {
		return p, nil
	}
	return s.fallback, nil
}

// PersonalizationAgent establishes the student profile that the rest of the
// run keys off: learning style, pace, and the difficulty the material should
// target. It runs first and has no prerequisites.
type PersonalizationAgent struct {
	store PreferenceStore
}

// NewPersonalizationAgent creates the agent around a preference store.
func NewPersonalizationAgent(store PreferenceStore) *PersonalizationAgent {
	return &PersonalizationAgent{store: store}
}

// Name implements core.Agent.
func (a *PersonalizationAgent) Name() core.AgentName { return core.AgentPersonalization }

// Invoke implements core.Agent.
func (a *PersonalizationAgent) Invoke(ctx context.Context, snap *core.Snapshot) (core.Contribution, error) {
	req := snap.Request()

	prefs, err := a.store.Profile(ctx, req.StudentID)
	if err != nil {
		return nil, core.NewUnavailable(a.Name(), err)
	}

	return core.PersonalizationProfile{
		LearningStyle:      prefs.LearningStyle,
		Pace:               prefs.Pace,
		AdjustedDifficulty: adjustDifficulty(req.KnownDifficulty, prefs.Pace),
	}, nil
}

// adjustDifficulty nudges the requested difficulty by pace: slow students
// step down, fast students step up.
func adjustDifficulty(base core.Difficulty, pace core.Pace) core.Difficulty {
	levels := []core.Difficulty{core.DifficultyBeginner, core.DifficultyIntermediate, core.DifficultyAdvanced}

	idx := 1 // intermediate default
	for i, d := range levels {
		if d == base {
			idx = i
		}
	}

	switch pace {
	case core.PaceSlow:
		if idx > 0 {
			idx--
		}
	case core.PaceFast:
		if idx < len(levels)-1 {
			idx++
		}
	}

	return levels[idx]
}
