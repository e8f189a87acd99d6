package timetable

import (
	"sort"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// WeekSlot is one period of a typical week with the schedules occupying
// its even and odd halves. WEEKLY schedules appear in both halves.
type WeekSlot struct {
	Period *models.Period
	Even   []*models.Schedule
	Odd    []*models.Schedule
}

// WeekDay collects a day's slots in period order.
type WeekDay struct {
	Day   models.DayOfWeek
	Slots []WeekSlot
}

// Week folds schedules into the "typical week" shape shared by the group,
// teacher and room views: days Monday-first, periods by start time, each
// split into even/odd halves. Inactive schedules are skipped; no date
// arithmetic is involved.
func Week(schedules []*models.Schedule) []WeekDay {
	byDay := make(map[models.DayOfWeek][]*models.Schedule)
	for _, s := range schedules {
		if !s.IsActive() || s.Period == nil {
			continue
		}
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
	}

	var days []WeekDay
	for _, day := range models.DaysOfWeek {
		daySchedules, ok := byDay[day]
		if !ok {
			continue
		}
		days = append(days, WeekDay{Day: day, Slots: daySlots(daySchedules)})
	}
	return days
}

func daySlots(schedules []*models.Schedule) []WeekSlot {
	byPeriod := make(map[int64]*WeekSlot)
	var slots []*WeekSlot
	for _, s := range schedules {
		slot, ok := byPeriod[s.Period.ID]
		if !ok {
			slot = &WeekSlot{Period: s.Period}
			byPeriod[s.Period.ID] = slot
			slots = append(slots, slot)
		}
		if s.Parity == models.ParityEven || s.Parity == models.ParityWeekly {
			slot.Even = append(slot.Even, s)
		}
		if s.Parity == models.ParityOdd || s.Parity == models.ParityWeekly {
			slot.Odd = append(slot.Odd, s)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Period.Before(slots[j].Period) })

	out := make([]WeekSlot, 0, len(slots))
	for _, slot := range slots {
		sortByID(slot.Even)
		sortByID(slot.Odd)
		out = append(out, *slot)
	}
	return out
}

func sortByID(schedules []*models.Schedule) {
	sort.Slice(schedules, func(i, j int) bool { return schedules[i].ID < schedules[j].ID })
}
