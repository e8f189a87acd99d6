package timetable

import "github.com/vmelnyk/timetable/internal/app/models"

// Merge attaches one-date overrides to expanded occurrences. For each
// occurrence it picks the temporary schedule bound to that schedule id and
// date; failing that, a vacation covering the date; otherwise the
// occurrence keeps showing the base schedule. The input agendas and the
// base schedules are left untouched — a fresh agenda list is returned.
func Merge(agendas []DailyAgenda, overrides, vacations []*models.TemporarySchedule) []DailyAgenda {
	merged := make([]DailyAgenda, 0, len(agendas))
	for _, day := range agendas {
		out := DailyAgenda{Date: day.Date, Slots: make([]AgendaSlot, 0, len(day.Slots))}
		for _, slot := range day.Slots {
			ms := AgendaSlot{Period: slot.Period, Occurrences: make([]Occurrence, 0, len(slot.Occurrences))}
			for _, occ := range slot.Occurrences {
				occ.Override = overrideFor(occ.Schedule.ID, day, overrides, vacations)
				ms.Occurrences = append(ms.Occurrences, occ)
			}
			out.Slots = append(out.Slots, ms)
		}
		merged = append(merged, out)
	}
	return merged
}

// overrideFor resolves the override valid for one occurrence: a bound
// temporary schedule wins over a same-date vacation.
func overrideFor(scheduleID int64, day DailyAgenda, overrides, vacations []*models.TemporarySchedule) *models.TemporarySchedule {
	for _, ts := range overrides {
		if ts.ScheduleID != nil && *ts.ScheduleID == scheduleID && models.SameDate(ts.Date, day.Date) {
			return ts
		}
	}
	for _, v := range vacations {
		if v.Vacation && models.SameDate(v.Date, day.Date) {
			return v
		}
	}
	return nil
}
