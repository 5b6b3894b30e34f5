package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday identifies one column of the weekly routine table.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// String returns the lowercase english day name, which is also the column name.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday accepts the english day name in any case.
func ParseWeekday(raw string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for i, candidate := range weekdayNames {
		if candidate == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", raw)
}

// Weekdays holds the seven day flags of a routine task.
type Weekdays struct {
	Monday    bool `db:"monday" json:"monday"`
	Tuesday   bool `db:"tuesday" json:"tuesday"`
	Wednesday bool `db:"wednesday" json:"wednesday"`
	Thursday  bool `db:"thursday" json:"thursday"`
	Friday    bool `db:"friday" json:"friday"`
	Saturday  bool `db:"saturday" json:"saturday"`
	Sunday    bool `db:"sunday" json:"sunday"`
}

// Get returns the flag for day.
func (w Weekdays) Get(day Weekday) bool {
	if p := w.field(day); p != nil {
		return *p
	}
	return false
}

// Toggle flips the flag for day and returns the new value.
func (w *Weekdays) Toggle(day Weekday) bool {
	p := w.field(day)
	if p == nil {
		return false
	}
	*p = !*p
	return *p
}

func (w *Weekdays) field(day Weekday) *bool {
	switch day {
	case Monday:
		return &w.Monday
	case Tuesday:
		return &w.Tuesday
	case Wednesday:
		return &w.Wednesday
	case Thursday:
		return &w.Thursday
	case Friday:
		return &w.Friday
	case Saturday:
		return &w.Saturday
	case Sunday:
		return &w.Sunday
	default:
		return nil
	}
}

// RoutineTask is a row of the fixed weekly routine.
type RoutineTask struct {
	ID        string  `db:"id" json:"id"`
	UserID    string  `db:"user_id" json:"user_id"`
	Name      string  `db:"task_name" json:"task_name"`
	TimeSlot  *string `db:"time_slot" json:"time_slot"`
	Weekdays
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
