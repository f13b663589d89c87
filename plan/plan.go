package plan

// Task is one scheduled activity within a day.
type Task struct {
	Title           string `json:"title"`
	Source          string `json:"source,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	IsBreak         bool   `json:"is_break"`
}

// Day groups the tasks of one study day. Day numbers are 1-based and appear
// in ascending order.
type Day struct {
	Day   int    `json:"day"`
	Tasks []Task `json:"tasks"`
}

// Plan is the final aggregated study plan. It is a read-only view: never
// mutated after construction.
type Plan struct {
	Days              []Day  `json:"days"`
	WellnessNote      string `json:"wellness_note,omitempty"`
	MotivationMessage string `json:"motivation_message"`
}

// TaskCount returns the total number of tasks across all days.
func (p Plan) TaskCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Tasks)
	}
	return n
}

// BreakCount returns the number of break tasks across all days.
func (p Plan) BreakCount() int {
	n := 0
	for _, d := range p.Days {
		for _, t := range d.Tasks {
			if t.IsBreak {
				n++
			}
		}
	}
	return n
}
