package dto

import "github.com/vidro-absolut/study-api/internal/models"

// StudyCycleOverview is the cycle dashboard payload.
type StudyCycleOverview struct {
	Preferences models.StudyPreference `json:"preferences"`
	Subjects    []models.StudySubject  `json:"subjects"`
	Progress    models.StudyProgress   `json:"progress"`
}

// WeeklyBudgetRequest sets the weekly hour budget of the cycle.
type WeeklyBudgetRequest struct {
	WeeklyHours      int    `json:"weekly_hours" validate:"required,min=1,max=80"`
	TargetUniversity string `json:"target_university" validate:"max=200"`
}

// AddSubjectRequest adds a subject to the cycle. Weight defaults to 1.
type AddSubjectRequest struct {
	Name   string `json:"subject_name" validate:"required,max=120"`
	Weight *int   `json:"weight" validate:"omitempty,min=1,max=10"`
}

// UpdateWeightRequest changes the weight of a subject.
type UpdateWeightRequest struct {
	Weight int `json:"weight" validate:"required,min=1,max=10"`
}

// ToggleHourRequest identifies the clicked hour square, when the client sends one.
type ToggleHourRequest struct {
	HourIndex *int `json:"hour_index" validate:"omitempty,min=0"`
}

// ResetProgressResponse reports how many subjects were reset.
type ResetProgressResponse struct {
	Reset int64 `json:"reset"`
}

// SelectModeRequest chooses between the routine and cycle planners.
type SelectModeRequest struct {
	Mode models.StudyMode `json:"study_mode" validate:"required,oneof=routine cycle"`
}

// CreateRoutineTaskRequest adds a row to the weekly routine.
type CreateRoutineTaskRequest struct {
	Name     string  `json:"task_name" validate:"required,max=120"`
	TimeSlot *string `json:"time_slot" validate:"omitempty,max=40"`
}

// ToggleDayRequest flips one weekday of a routine task.
type ToggleDayRequest struct {
	Day string `json:"day" validate:"required"`
}

// RenameRoutineTaskRequest renames a routine task. A blank name is allowed.
type RenameRoutineTaskRequest struct {
	Name string `json:"task_name" validate:"max=120"`
}
