package models

// Schedule is one recurring weekly timetable slot: a lesson placed on a
// day of week and period, in a room, repeating by parity.
type Schedule struct {
	ID        int64     `json:"id"`
	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	Parity    Parity    `json:"evenOdd"`
	Period    *Period   `json:"period,omitempty"`
	Room      *Room     `json:"room,omitempty"`
	Lesson    *Lesson   `json:"lesson,omitempty"`
}

// IsActive reports whether every entity the schedule reaches (room,
// semester, group, teacher, subject) is enabled. Inactive schedules are
// invisible to conflict checks and reads. Evaluated once on a fetched
// snapshot instead of repeating the join walk per query.
func (s *Schedule) IsActive() bool {
	if s.Room == nil || s.Lesson == nil {
		return false
	}
	l := s.Lesson
	if l.Semester == nil || l.Group == nil || l.Teacher == nil || l.Subject == nil {
		return false
	}
	return !s.Room.Disabled &&
		!l.Semester.Disabled &&
		!l.Group.Disabled &&
		!l.Teacher.Disabled &&
		!l.Subject.Disabled
}

// Semester returns the semester the schedule belongs to, reached through
// its lesson. May be nil on partially loaded rows.
func (s *Schedule) Semester() *Semester {
	if s.Lesson == nil {
		return nil
	}
	return s.Lesson.Semester
}
