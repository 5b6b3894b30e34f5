package models

import "time"

// StudyMode is the planning strategy chosen by a student.
type StudyMode string

const (
	// StudyModeRoutine is the fixed weekly schedule of tasks.
	StudyModeRoutine StudyMode = "routine"
	// StudyModeCycle is the flexible weighted study cycle.
	StudyModeCycle StudyMode = "cycle"
)

// Valid reports whether m is a known study mode.
func (m StudyMode) Valid() bool {
	return m == StudyModeRoutine || m == StudyModeCycle
}

// StudyPreference stores the per-user planner settings.
type StudyPreference struct {
	ID               string     `db:"id" json:"id"`
	UserID           string     `db:"user_id" json:"user_id"`
	StudyMode        *StudyMode `db:"study_mode" json:"study_mode"`
	WeeklyHours      int        `db:"weekly_hours" json:"weekly_hours"`
	TargetUniversity string     `db:"target_university" json:"target_university"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// StudySubject is one subject of the weighted study cycle.
// CalculatedHours is derived from the weight share of the weekly budget.
type StudySubject struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	Name            string    `db:"subject_name" json:"subject_name"`
	Weight          int       `db:"weight" json:"weight"`
	CalculatedHours int       `db:"calculated_hours" json:"calculated_hours"`
	CompletedHours  int       `db:"completed_hours" json:"completed_hours"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// StudyProgress aggregates completed hours across a subject set.
type StudyProgress struct {
	CompletedHours  int     `json:"completed_hours"`
	CalculatedHours int     `json:"calculated_hours"`
	Percentage      float64 `json:"percentage"`
}
