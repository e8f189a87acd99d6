package timetable

import (
	"sort"
	"time"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// Expand turns weekly schedules into concrete occurrences over the
// inclusive [from, to] date range. Every (date, schedule) pair for which
// Applies holds appears exactly once. Dates without occurrences are
// omitted; within a date, slots are ordered by period start time and
// occurrences by schedule id, so the result is deterministic.
func Expand(schedules []*models.Schedule, from, to time.Time) []DailyAgenda {
	var agendas []DailyAgenda
	for date := models.DateOnly(from); !date.After(models.DateOnly(to)); date = date.AddDate(0, 0, 1) {
		var matched []*models.Schedule
		for _, s := range schedules {
			if s.IsActive() && Applies(s, date) {
				matched = append(matched, s)
			}
		}
		if len(matched) == 0 {
			continue
		}
		agendas = append(agendas, DailyAgenda{Date: date, Slots: bucketByPeriod(matched)})
	}
	return agendas
}

// bucketByPeriod groups schedules under their periods, ordered by period
// start time.
func bucketByPeriod(schedules []*models.Schedule) []AgendaSlot {
	byPeriod := make(map[int64]*AgendaSlot)
	var slots []*AgendaSlot
	for _, s := range schedules {
		if s.Period == nil {
			continue
		}
		slot, ok := byPeriod[s.Period.ID]
		if !ok {
			slot = &AgendaSlot{Period: s.Period}
			byPeriod[s.Period.ID] = slot
			slots = append(slots, slot)
		}
		slot.Occurrences = append(slot.Occurrences, Occurrence{Schedule: s})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Period.Before(slots[j].Period) })

	out := make([]AgendaSlot, 0, len(slots))
	for _, slot := range slots {
		sort.Slice(slot.Occurrences, func(i, j int) bool {
			return slot.Occurrences[i].Schedule.ID < slot.Occurrences[j].Schedule.ID
		})
		out = append(out, *slot)
	}
	return out
}
