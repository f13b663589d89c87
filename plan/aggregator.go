package plan

import (
	"fmt"

	"github.com/studymesh/studymesh/core"
)

// fallbackTaskMinutes sizes the per-resource tasks synthesized when the
// schedule agent produced nothing.
const fallbackTaskMinutes = 45

// Aggregate projects the run snapshot into the user-facing Plan. It is a
// pure function: repeated calls on the same snapshot yield identical plans.
//
// Schedule tasks drive the day structure. Study (non-break) tasks are
// annotated with learning resource sources in resource order; a practice
// task is appended to the final day when assessment questions exist. Without
// a schedule, resources degrade into a single-day task list so a partial run
// still yields something actionable.
func Aggregate(snap *core.Snapshot) Plan {
	var p Plan

	resources := learningResources(snap)

	if sched, ok := snap.Contribution(core.AgentSchedule); ok {
		p.Days = buildDays(sched.(core.SchedulePlan), resources)
	} else if len(resources) > 0 {
		p.Days = []Day{fallbackDay(resources)}
	}

	if len(p.Days) > 0 {
		if quiz, ok := snap.Contribution(core.AgentAssessment); ok {
			appendPracticeTask(&p.Days[len(p.Days)-1], quiz.(core.AssessmentQuestions))
		}
	}

	if w, ok := snap.Contribution(core.AgentWellness); ok {
		p.WellnessNote = w.(core.WellnessAssessment).Recommendation
	}

	if m, ok := snap.Contribution(core.AgentMotivation); ok {
		p.MotivationMessage = m.(core.MotivationMessage).Text
	}

	return p
}

func learningResources(snap *core.Snapshot) []core.Resource {
	contrib, ok := snap.Contribution(core.AgentLearning)
	if !ok {
		return nil
	}
	return contrib.(core.LearningResources).Resources
}

// buildDays groups schedule tasks by day, preserving task order within each
// day and day order of first appearance. Study tasks pick up resource
// attribution round-robin.
func buildDays(sched core.SchedulePlan, resources []core.Resource) []Day {
	var days []Day
	index := map[int]int{}
	studyTasks := 0

	for _, st := range sched.Tasks {
		i, ok := index[st.Day]
		if !ok {
			days = append(days, Day{Day: st.Day})
			i = len(days) - 1
			index[st.Day] = i
		}

		task := Task{
			Title:           st.Task,
			DurationMinutes: st.DurationMinutes,
			IsBreak:         st.IsBreak,
		}
		if !st.IsBreak && len(resources) > 0 {
			task.Source = resources[studyTasks%len(resources)].Source
			studyTasks++
		}
		days[i].Tasks = append(days[i].Tasks, task)
	}

	return days
}

func fallbackDay(resources []core.Resource) Day {
	day := Day{Day: 1}
	for _, r := range resources {
		day.Tasks = append(day.Tasks, Task{
			Title:           fmt.Sprintf("Review %s", r.Title),
			Source:          r.Source,
			DurationMinutes: fallbackTaskMinutes,
		})
	}
	return day
}

func appendPracticeTask(day *Day, quiz core.AssessmentQuestions) {
	n := len(quiz.Questions)
	if n == 0 {
		return
	}
	day.Tasks = append(day.Tasks, Task{
		Title:           fmt.Sprintf("Practice quiz (%d questions)", n),
		DurationMinutes: 2 * n,
	})
}
