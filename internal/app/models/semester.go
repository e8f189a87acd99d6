package models

import "time"

// Semester bounds a teaching term. StartDay and EndDay are inclusive
// calendar dates; DaysOfWeek and Periods describe which weekdays and time
// slots the semester uses.
type Semester struct {
	ID              int64       `json:"id"`
	Description     string      `json:"description"`
	Year            int         `json:"year"`
	StartDay        time.Time   `json:"startDay"`
	EndDay          time.Time   `json:"endDay"`
	CurrentSemester bool        `json:"currentSemester"`
	Disabled        bool        `json:"disable"`
	DaysOfWeek      []DayOfWeek `json:"semester_days,omitempty"`
	Periods         []*Period   `json:"semester_classes,omitempty"`
}

// ContainsDate reports whether date falls inside [StartDay, EndDay].
func (s *Semester) ContainsDate(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(s.StartDay)) && !d.After(DateOnly(s.EndDay))
}

// DateOnly strips the clock portion, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
