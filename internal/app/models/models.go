package models

import "time"

// Parity tells on which weeks of a semester a schedule entry occurs.
type Parity string

const (
	ParityEven   Parity = "EVEN"
	ParityOdd    Parity = "ODD"
	ParityWeekly Parity = "WEEKLY"
)

// Valid reports whether p is one of the known parity values.
func (p Parity) Valid() bool {
	switch p {
	case ParityEven, ParityOdd, ParityWeekly:
		return true
	}
	return false
}

// DayOfWeek is a Monday-first weekday, stored as its uppercase English name.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// DaysOfWeek lists all days in display order (Monday first).
var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven day names.
func (d DayOfWeek) Valid() bool {
	for _, day := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Ordinal returns the Monday-based index of the day (Monday = 0).
func (d DayOfWeek) Ordinal() int {
	for i, day := range DaysOfWeek {
		if d == day {
			return i
		}
	}
	return -1
}

// Weekday converts d to the standard library weekday.
func (d DayOfWeek) Weekday() time.Weekday {
	switch d {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	case Saturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// DayOfWeekFromWeekday converts a standard library weekday to a DayOfWeek.
func DayOfWeekFromWeekday(w time.Weekday) DayOfWeek {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// LessonType categorizes a lesson.
type LessonType string

const (
	LessonLecture    LessonType = "LECTURE"
	LessonLaboratory LessonType = "LABORATORY"
	LessonPractical  LessonType = "PRACTICAL"
	LessonSeminar    LessonType = "SEMINAR"
)

// Valid reports whether t is one of the known lesson types.
func (t LessonType) Valid() bool {
	switch t {
	case LessonLecture, LessonLaboratory, LessonPractical, LessonSeminar:
		return true
	}
	return false
}
