package models

import "time"

// TemporarySchedule is a one-date change layered over the recurring
// timetable. Bound to a schedule (ScheduleID set) it substitutes room,
// teacher, subject or marks a cancellation for that date only. With
// Vacation set and no schedule reference it applies to every occurrence
// on its date (an institutional holiday). It never mutates the base
// schedule.
type TemporarySchedule struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	ScheduleID *int64    `json:"scheduleId,omitempty"`

	LessonType     *LessonType `json:"lessonType,omitempty"`
	Teacher        *Teacher    `json:"teacher,omitempty"`
	Subject        *Subject    `json:"subject,omitempty"`
	Group          *Group      `json:"group,omitempty"`
	Room           *Room       `json:"room,omitempty"`
	Period         *Period     `json:"class,omitempty"`
	Semester       *Semester   `json:"semester,omitempty"`
	TeacherForSite string      `json:"teacherForSite,omitempty"`
	SubjectForSite string      `json:"subjectForSite,omitempty"`
	LinkToMeeting  string      `json:"linkToMeeting,omitempty"`

	Grouped  bool `json:"grouped"`
	Vacation bool `json:"vacation"`
}

// AppliesToSchedule reports whether the override targets the given
// schedule on the given date. Vacations match any schedule on their date.
func (t *TemporarySchedule) AppliesToSchedule(scheduleID int64, date time.Time) bool {
	if !SameDate(t.Date, date) {
		return false
	}
	if t.Vacation && t.ScheduleID == nil {
		return true
	}
	return t.ScheduleID != nil && *t.ScheduleID == scheduleID
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
