package timetable

import (
	"time"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// Occurrence is one schedule landing on one concrete date, together with
// the override (if any) valid for that date only. The base schedule is
// shared, never copied or mutated; the override is presentation-time.
type Occurrence struct {
	Schedule *models.Schedule
	Override *models.TemporarySchedule
}

// AgendaSlot groups a date's occurrences under one period.
type AgendaSlot struct {
	Period      *models.Period
	Occurrences []Occurrence
}

// DailyAgenda is the resolved timetable of one calendar date: slots in
// period start-time order, each holding the schedules that occur then.
type DailyAgenda struct {
	Date  time.Time
	Slots []AgendaSlot
}
