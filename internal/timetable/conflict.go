package timetable

import "github.com/vmelnyk/timetable/internal/app/models"

// Intersects reports whether two schedules sharing a weekly slot would
// collide given their parities. WEEKLY overlaps every parity class; EVEN
// and ODD overlap themselves and WEEKLY, never each other.
func Intersects(candidate, existing models.Parity) bool {
	if candidate == models.ParityWeekly || existing == models.ParityWeekly {
		return true
	}
	return candidate == existing
}

// CountConflicts counts the active schedules whose parity intersects the
// candidate parity. The caller passes the schedules already occupying the
// (semester, day, period, group-or-teacher) slot; zero means the candidate
// may be saved.
func CountConflicts(existing []*models.Schedule, candidate models.Parity) int {
	n := 0
	for _, s := range existing {
		if s.IsActive() && Intersects(candidate, s.Parity) {
			n++
		}
	}
	return n
}

// SlotSuits reports whether a teacher's declared wishes leave the given
// weekly slot acceptable. A BAD wish whose parity intersects the slot's
// parity marks the slot unsuitable; absence of wishes means the slot
// suits.
func SlotSuits(wishes []*models.TeacherWish, day models.DayOfWeek, parity models.Parity, periodID int64) bool {
	for _, w := range wishes {
		if w.Preference != models.WishBad {
			continue
		}
		if w.DayOfWeek == day && w.PeriodID == periodID && Intersects(parity, w.Parity) {
			return false
		}
	}
	return true
}
