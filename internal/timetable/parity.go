// Package timetable holds the recurrence and conflict engine: pure
// functions that classify dates into semester week parity, expand weekly
// schedules into calendar occurrences, merge one-date overrides, and count
// parity-aware slot conflicts. The package performs no I/O; callers fetch
// the data and serialize the results.
package timetable

import (
	"time"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// mondayOf returns the Monday on or before the given date.
func mondayOf(t time.Time) time.Time {
	d := models.DateOnly(t)
	// time.Weekday is Sunday-based; shift so Monday = 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekParity classifies date into the EVEN or ODD week of a semester.
// Weeks are the 7-day windows starting on Mondays; the week containing
// semesterStart is week 0 and therefore EVEN. This is the single canonical
// parity rule for the whole system.
func WeekParity(semesterStart, date time.Time) models.Parity {
	weeks := int(mondayOf(date).Sub(mondayOf(semesterStart)).Hours() / (24 * 7))
	if weeks%2 == 0 {
		return models.ParityEven
	}
	return models.ParityOdd
}

// Applies reports whether the schedule occurs on the given calendar date:
// the date lies within the schedule's semester, falls on the schedule's
// weekday, and the schedule's parity covers the date's week.
func Applies(s *models.Schedule, date time.Time) bool {
	sem := s.Semester()
	if sem == nil {
		return false
	}
	if !sem.ContainsDate(date) {
		return false
	}
	if models.DayOfWeekFromWeekday(date.Weekday()) != s.DayOfWeek {
		return false
	}
	return s.Parity == models.ParityWeekly || s.Parity == WeekParity(sem.StartDay, date)
}
