package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/studymesh/studymesh/core"
)

// maxScheduleDays caps how far out the schedule agent will plan.
const maxScheduleDays = 7

// AvailabilityService reports how much study time the student has per day.
// Real implementations consult a calendar; the static service returns a
// fixed budget.
type AvailabilityService interface {
	DailyStudyMinutes(ctx context.Context, studentID string) (int, error)
}

// StaticAvailability is the deterministic stub availability service.
type StaticAvailability struct {
	minutes int
}

// NewStaticAvailability creates a stub service with a two-hour daily budget.
func NewStaticAvailability() *StaticAvailability {
	return &StaticAvailability{minutes: 120}
}

// SetDailyStudyMinutes overrides the daily budget.
func (s *StaticAvailability) SetDailyStudyMinutes(m int) { s.minutes = m }

// DailyStudyMinutes implements AvailabilityService.
func (s *StaticAvailability) DailyStudyMinutes(context.Context, string) (int, error) {
	return s.minutes, nil
}

// ScheduleAgent lays study sessions out over days, one session per day,
// sized by the adjusted difficulty and capped by calendar availability.
// Wellness drives break placement: the fatigue level decides how many breaks
// are inserted and how long they are. It requires the wellness assessment
// (break placement) and the assessment questions (practice-time allocation).
type ScheduleAgent struct {
	availability AvailabilityService
}

// NewScheduleAgent creates the agent around an availability service.
func NewScheduleAgent(availability AvailabilityService) *ScheduleAgent {
	return &ScheduleAgent{availability: availability}
}

// Name implements core.Agent.
func (a *ScheduleAgent) Name() core.AgentName { return core.AgentSchedule }

// Invoke implements core.Agent.
func (a *ScheduleAgent) Invoke(ctx context.Context, snap *core.Snapshot) (core.Contribution, error) {
	wc, ok := snap.Contribution(core.AgentWellness)
	if !ok {
		return nil, core.NewInvalidInput(a.Name(), "wellness assessment missing from context")
	}
	wellness := wc.(core.WellnessAssessment)

	if !snap.Has(core.AgentAssessment) {
		return nil, core.NewInvalidInput(a.Name(), "assessment questions missing from context")
	}

	daily, err := a.availability.DailyStudyMinutes(ctx, snap.Request().StudentID)
	if err != nil {
		return nil, core.NewUnavailable(a.Name(), err)
	}

	topic := snap.Request().Topic()
	sessionLen := sessionMinutes(difficulty(snap), daily)
	sessions := sessionCount(snap, sessionLen)

	var tasks []core.ScheduledTask
	for day := 1; day <= sessions; day++ {
		tasks = append(tasks, core.ScheduledTask{
			Day:             day,
			Task:            sessionTask(topic, day, sessions),
			DurationMinutes: sessionLen,
		})
		if b, ok := breakTask(day, sessions, wellness.FatigueLevel); ok {
			tasks = append(tasks, b)
		}
	}

	return core.SchedulePlan{Tasks: tasks}, nil
}

// sessionTask titles a session by its position: the first session covers
// fundamentals, the last reviews, the middle ones deepen.
func sessionTask(topic string, day, total int) string {
	switch {
	case total == 1:
		return fmt.Sprintf("Study %s", topic)
	case day == 1:
		return fmt.Sprintf("Learn %s fundamentals", topic)
	case day == total:
		return fmt.Sprintf("Review %s and practice recall", topic)
	default:
		return fmt.Sprintf("Deepen %s understanding (part %d of %d)", topic, day, total)
	}
}

// difficulty reads the adjusted difficulty off the profile, defaulting to
// intermediate when personalization is absent (defensive: routing skips this
// agent in that case).
func difficulty(snap *core.Snapshot) core.Difficulty {
	if contrib, ok := snap.Contribution(core.AgentPersonalization); ok {
		return contrib.(core.PersonalizationProfile).AdjustedDifficulty
	}
	return core.DifficultyIntermediate
}

// sessionMinutes sizes one study session: harder material earns longer
// sessions, bounded by the daily availability budget.
func sessionMinutes(d core.Difficulty, dailyBudget int) int {
	var m int
	switch d {
	case core.DifficultyBeginner:
		m = 60
	case core.DifficultyAdvanced:
		m = 120
	default:
		m = 90
	}
	if dailyBudget > 0 && m > dailyBudget {
		m = dailyBudget
	}
	return m
}

// sessionCount spreads one hour per learning resource over sessions of the
// given length, at least one and at most a week. A deadline shrinks the
// horizon further when it lands sooner.
func sessionCount(snap *core.Snapshot, sessionLen int) int {
	totalMinutes := 120
	if contrib, ok := snap.Contribution(core.AgentLearning); ok {
		if n := len(contrib.(core.LearningResources).Resources); n > 0 {
			totalMinutes = n * 60
		}
	}

	sessions := totalMinutes / sessionLen
	if totalMinutes%sessionLen != 0 {
		sessions++
	}
	if sessions < 1 {
		sessions = 1
	}
	if sessions > maxScheduleDays {
		sessions = maxScheduleDays
	}

	if deadline := snap.Request().Deadline; deadline != nil {
		if days := int(time.Until(*deadline).Hours() / 24); days >= 1 && days < sessions {
			sessions = days
		}
	}
	return sessions
}

// breakTask decides break placement for a day. High fatigue earns a
// mindfulness break every day, medium fatigue a stretch break every day, and
// a rested student still gets one short walk on day one.
func breakTask(day, totalDays int, fatigue float64) (core.ScheduledTask, bool) {
	switch {
	case fatigue > 0.7:
		return core.ScheduledTask{Day: day, Task: "Mindfulness break", DurationMinutes: 10, IsBreak: true}, true
	case fatigue > 0.5:
		return core.ScheduledTask{Day: day, Task: "Stretch break", DurationMinutes: 5, IsBreak: true}, true
	case day == 1:
		return core.ScheduledTask{Day: day, Task: "Short walk", DurationMinutes: 5, IsBreak: true}, true
	}
	return core.ScheduledTask{}, false
}
