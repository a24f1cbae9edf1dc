package diagnostic

import (
	"strconv"

	"github.com/thanvish21/systemx/internal/profile"
)

// Schedule returns the standard diagnostic schedule. Order matters: the
// college-hours and energy questions reference the college-attendance
// answer given earlier in the same pass.
func Schedule() []Question {
	return []Question{
		{
			Prompt:  "Which attempt are you targeting?",
			Kind:    KindSelect,
			Options: []string{"January", "April"},
			set: func(p *profile.Profile, v string) error {
				p.JEEAttempt = profile.Attempt(v)
				return nil
			},
		},
		{
			Prompt:  "Current college year?",
			Kind:    KindSelect,
			Options: []string{"1st Year", "2nd Year"},
			set: func(p *profile.Profile, v string) error {
				p.CollegeYear = profile.CollegeYear(v)
				return nil
			},
		},
		{
			Prompt:  "Do you attend college regularly?",
			Kind:    KindSelect,
			Options: []string{"Yes", "No"},
			set: func(p *profile.Profile, v string) error {
				p.IsCollegeStudent = v == "Yes"
				return nil
			},
		},
		{
			Prompt: "Typical college hours? (e.g., 8am-4pm).",
			Kind:   KindText,
			Visible: func(p profile.Profile) bool {
				return p.IsCollegeStudent
			},
			set: func(p *profile.Profile, v string) error {
				p.CollegeHours = v
				return nil
			},
		},
		{
			Prompt:  "Fatigue level after college? (High, Medium, Low)",
			Kind:    KindSelect,
			Options: []string{"High", "Medium", "Low"},
			Visible: func(p profile.Profile) bool {
				return p.IsCollegeStudent
			},
			set: func(p *profile.Profile, v string) error {
				p.EnergyProfile = profile.Energy(v)
				return nil
			},
		},
		{
			Prompt:  "Current syllabus coverage? (Beginner, Average, Strong)",
			Kind:    KindSelect,
			Options: []string{"Beginner", "Average", "Strong"},
			set: func(p *profile.Profile, v string) error {
				p.Level = profile.Level(v)
				return nil
			},
		},
		{
			Prompt:  "Effective hours you can grind AFTER college?",
			Kind:    KindInteger,
			Default: "6",
			set: func(p *profile.Profile, v string) error {
				n, err := strconv.Atoi(v)
				if err != nil {
					return ErrNotANumber
				}
				p.DailyStudyTime = n
				return nil
			},
		},
		{
			Prompt: "Target percentile or marks improvement?",
			Kind:   KindText,
			set: func(p *profile.Profile, v string) error {
				p.TargetPercentile = v
				return nil
			},
		},
	}
}
