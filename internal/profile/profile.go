package profile

import "fmt"

// Level is the candidate's syllabus coverage level.
type Level string

const (
	LevelBeginner Level = "Beginner"
	LevelAverage  Level = "Average"
	LevelStrong   Level = "Strong"
)

// Energy is the candidate's post-college energy profile.
type Energy string

const (
	EnergyLow    Energy = "Low"
	EnergyMedium Energy = "Medium"
	EnergyHigh   Energy = "High"
)

// Attempt is the JEE Mains attempt window the candidate is targeting.
type Attempt string

const (
	AttemptJanuary Attempt = "January"
	AttemptApril   Attempt = "April"
)

// CollegeYear is the candidate's current year of college.
type CollegeYear string

const (
	FirstYear  CollegeYear = "1st Year"
	SecondYear CollegeYear = "2nd Year"
)

// Profile is the single candidate record produced by the diagnostic and
// persisted under one storage slot. CollegeHours and EnergyProfile are
// meaningful only when IsCollegeStudent is true.
type Profile struct {
	Codename         string      `json:"codename"`
	Level            Level       `json:"level"`
	DailyStudyTime   int         `json:"dailyStudyTime"`
	TargetPercentile string      `json:"targetPercentile"`
	IsCollegeStudent bool        `json:"isCollegeStudent"`
	CollegeHours     string      `json:"collegeHours"`
	EnergyProfile    Energy      `json:"energyProfile"`
	JEEAttempt       Attempt     `json:"jeeAttempt"`
	CollegeYear      CollegeYear `json:"collegeYear"`
}

// Defaults returns the pre-diagnostic profile seed. Fields gated behind
// unmet diagnostic conditions keep these values.
func Defaults() Profile {
	return Profile{
		Level:            LevelAverage,
		DailyStudyTime:   12,
		TargetPercentile: "98+",
		IsCollegeStudent: true,
		CollegeHours:     "8 AM - 3 PM",
		EnergyProfile:    EnergyMedium,
		JEEAttempt:       AttemptJanuary,
		CollegeYear:      SecondYear,
	}
}

// Validate checks that a completed profile is internally consistent.
// An incomplete profile must never be persisted.
func (p Profile) Validate() error {
	if p.Codename == "" {
		return fmt.Errorf("profile has no codename")
	}
	switch p.Level {
	case LevelBeginner, LevelAverage, LevelStrong:
	default:
		return fmt.Errorf("invalid level %q", p.Level)
	}
	switch p.JEEAttempt {
	case AttemptJanuary, AttemptApril:
	default:
		return fmt.Errorf("invalid attempt %q", p.JEEAttempt)
	}
	switch p.CollegeYear {
	case FirstYear, SecondYear:
	default:
		return fmt.Errorf("invalid college year %q", p.CollegeYear)
	}
	if p.DailyStudyTime <= 0 {
		return fmt.Errorf("daily study time must be positive, got %d", p.DailyStudyTime)
	}
	if p.IsCollegeStudent {
		switch p.EnergyProfile {
		case EnergyLow, EnergyMedium, EnergyHigh:
		default:
			return fmt.Errorf("invalid energy profile %q", p.EnergyProfile)
		}
	}
	return nil
}
