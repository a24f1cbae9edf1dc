// Package plan holds the static rolling day plan shown on the dashboard.
// Reference data only; nothing here is user-generated.
package plan

// Subject is one of the three JEE Mains subjects.
type Subject string

const (
	Physics   Subject = "Physics"
	Chemistry Subject = "Chemistry"
	Maths     Subject = "Maths"
)

// TaskType classifies a study slot. TypeSkip is a sentinel meaning zero
// allocated time: the chapter is deliberately dropped.
type TaskType string

const (
	TypeTheory         TaskType = "Theory"
	TypeProblemSolving TaskType = "Problem Solving"
	TypeRevision       TaskType = "Revision"
	TypeLightPrep      TaskType = "Light Prep"
	TypeSkip           TaskType = "SKIP"
)

// Priority ranks a task within the day.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// StudyTask is one slot in the rolling plan.
type StudyTask struct {
	ID          string
	Subject     Subject
	Topic       string
	Type        TaskType
	Duration    string
	Priority    Priority
	Energy      string
	Description string
	HighROI     bool
}

// DayPlan is a named, date-free task list. The plan rolls: no hard dates.
type DayPlan struct {
	Name  string
	Tasks []StudyTask
}

// Rolling returns the current rolling plan.
func Rolling() DayPlan {
	return DayPlan{
		Name: "Rolling Plan Alpha",
		Tasks: []StudyTask{
			{
				ID:          "1",
				Subject:     Chemistry,
				Topic:       "Modern Physics Formulas",
				Type:        TypeLightPrep,
				Duration:    "30m",
				Priority:    PriorityHigh,
				Energy:      "Low",
				Description: "Transit time task: Memorize De-Broglie & Photoelectric formulas.",
				HighROI:     true,
			},
			{
				ID:          "2",
				Subject:     Maths,
				Topic:       "Vector & 3D (Core)",
				Type:        TypeProblemSolving,
				Duration:    "2.5h",
				Priority:    PriorityHigh,
				Energy:      "High",
				Description: "Main study slot: Dot/Cross product PYQs. Do this when fresh.",
				HighROI:     true,
			},
			{
				ID:          "3",
				Subject:     Physics,
				Topic:       "Modern Physics PYQs",
				Type:        TypeProblemSolving,
				Duration:    "1.5h",
				Priority:    PriorityMedium,
				Energy:      "Medium",
				Description: "Post-college recovery slot: Dual nature questions.",
				HighROI:     true,
			},
			{
				ID:          "4",
				Subject:     Chemistry,
				Topic:       "Surface Chemistry",
				Type:        TypeRevision,
				Duration:    "1h",
				Priority:    PriorityMedium,
				Energy:      "Low",
				Description: "Late night slot: Direct NCERT reading. Zero calculation.",
				HighROI:     true,
			},
			{
				ID:          "5",
				Subject:     Maths,
				Topic:       "Integration (Hard)",
				Type:        TypeSkip,
				Duration:    "0h",
				Priority:    PriorityLow,
				Energy:      "High",
				Description: "Too much time for too little marks right now. Skip.",
			},
		},
	}
}
