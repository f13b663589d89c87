package core

// LearningStyle categorizes how a student absorbs material best.
type LearningStyle string

// Supported learning styles.
const (
	StyleVisual         LearningStyle = "visual"
	StyleAuditory       LearningStyle = "auditory"
	StyleKinesthetic    LearningStyle = "kinesthetic"
	StyleReadingWriting LearningStyle = "reading_writing"
)

// Pace categorizes how quickly a student prefers to move through material.
type Pace string

// Supported pace preferences.
const (
	PaceSlow     Pace = "slow"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

// Contribution is a typed, immutable agent output. Exactly one concrete
// variant exists per specialist agent; Producer reports which agent emits it.
// A Contribution must never be mutated after it is returned from Invoke.
type Contribution interface {
	Producer() AgentName
}

// PersonalizationProfile captures the student's learning preferences and the
// difficulty the rest of the run should target.
type PersonalizationProfile struct {
	LearningStyle      LearningStyle
	Pace               Pace
	AdjustedDifficulty Difficulty
}

// Producer implements Contribution.
func (PersonalizationProfile) Producer() AgentName { return AgentPersonalization }

// Resource is one study material reference.
type Resource struct {
	Title  string
	Source string
	URL    string
}

// LearningResources is the learning agent's contribution: an ordered list of
// study materials, most preferred first.
type LearningResources struct {
	Resources []Resource
}

// Producer implements Contribution.
func (LearningResources) Producer() AgentName { return AgentLearning }

// WellnessAssessment reports the student's current condition. FatigueLevel is
// normalized to [0,1].
type WellnessAssessment struct {
	FatigueLevel   float64
	EmotionalState string
	Recommendation string
}

// Producer implements Contribution.
func (WellnessAssessment) Producer() AgentName { return AgentWellness }

// Question is a single multiple-choice practice question.
type Question struct {
	Question     string
	Options      []string
	CorrectIndex int
}

// AssessmentQuestions is the assessment agent's contribution.
type AssessmentQuestions struct {
	Questions []Question
}

// Producer implements Contribution.
func (AssessmentQuestions) Producer() AgentName { return AgentAssessment }

// ScheduledTask is one entry of the study schedule. Day is 1-based.
type ScheduledTask struct {
	Day             int
	Task            string
	DurationMinutes int
	IsBreak         bool
}

// SchedulePlan is the schedule agent's contribution: day-ordered study tasks
// with wellness breaks already placed.
type SchedulePlan struct {
	Tasks []ScheduledTask
}

// Producer implements Contribution.
func (SchedulePlan) Producer() AgentName { return AgentSchedule }

// MotivationMessage is the closing encouragement. It is always part of the
// final plan, even for runs where every other agent failed.
type MotivationMessage struct {
	Text string
}

// Producer implements Contribution.
func (MotivationMessage) Producer() AgentName { return AgentMotivation }

// Signals are cross-agent values derived from contributions by the
// orchestrator's merge step. Each signal is scoped to the single agent that
// produces it, so merges never conflict. Later agents read signals instead of
// digging through sibling contributions.
type Signals struct {
	// FatigueLevel is derived from the wellness assessment; FatigueKnown
	// reports whether it has been set.
	FatigueLevel float64
	FatigueKnown bool
	// LearningStyle and Pace are derived from the personalization profile.
	// Zero values mean the profile has not been merged yet.
	LearningStyle LearningStyle
	Pace          Pace
}
