package timetable

import (
	"testing"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// Two lessons alternate on Mondays: L1 on even weeks, L2 on odd weeks.
// Over three consecutive Mondays the expansion yields L1, L2, L1.
func TestExpandAlternatingParity(t *testing.T) {
	t.Parallel()

	l1 := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityEven})
	l2 := slot(slotOpts{id: 2, day: models.Monday, parity: models.ParityOdd})

	agendas := Expand([]*models.Schedule{l1, l2}, date(2021, 9, 6), date(2021, 9, 20))

	if len(agendas) != 3 {
		t.Fatalf("expected 3 agenda days, got %d", len(agendas))
	}

	wantIDs := []int64{1, 2, 1}
	wantDates := []string{"2021-09-06", "2021-09-13", "2021-09-20"}
	for i, day := range agendas {
		if got := day.Date.Format("2006-01-02"); got != wantDates[i] {
			t.Errorf("day %d: date = %s, want %s", i, got, wantDates[i])
		}
		if len(day.Slots) != 1 || len(day.Slots[0].Occurrences) != 1 {
			t.Fatalf("day %d: expected exactly one occurrence", i)
		}
		if got := day.Slots[0].Occurrences[0].Schedule.ID; got != wantIDs[i] {
			t.Errorf("day %d: schedule id = %d, want %d", i, got, wantIDs[i])
		}
	}
}

// Dates with no occurrences do not show up at all: the range covers a
// full week but only the Monday carries a lesson.
func TestExpandOmitsEmptyDates(t *testing.T) {
	t.Parallel()

	s := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly})
	agendas := Expand([]*models.Schedule{s}, date(2021, 9, 6), date(2021, 9, 12))

	if len(agendas) != 1 {
		t.Fatalf("expected 1 agenda day, got %d", len(agendas))
	}
	if !agendas[0].Date.Equal(date(2021, 9, 6)) {
		t.Errorf("unexpected agenda date %s", agendas[0].Date)
	}
}

// Slots come back ordered by period start time regardless of input order,
// and occurrences within a slot by schedule id.
func TestExpandOrdering(t *testing.T) {
	t.Parallel()

	second := slot(slotOpts{id: 3, day: models.Monday, parity: models.ParityWeekly, period: secondPeriod})
	firstB := slot(slotOpts{id: 2, day: models.Monday, parity: models.ParityEven,
		group: &models.Group{ID: 2, Title: "KN-22"}})
	firstA := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly})

	agendas := Expand([]*models.Schedule{second, firstB, firstA}, date(2021, 9, 6), date(2021, 9, 6))

	if len(agendas) != 1 {
		t.Fatalf("expected 1 agenda day, got %d", len(agendas))
	}
	slots := agendas[0].Slots
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Period.ID != 1 || slots[1].Period.ID != 2 {
		t.Errorf("slots out of period order: %d, %d", slots[0].Period.ID, slots[1].Period.ID)
	}
	occ := slots[0].Occurrences
	if len(occ) != 2 || occ[0].Schedule.ID != 1 || occ[1].Schedule.ID != 2 {
		t.Errorf("occurrences out of id order")
	}
}

func TestExpandSkipsInactive(t *testing.T) {
	t.Parallel()

	inactive := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly, disabled: true})
	agendas := Expand([]*models.Schedule{inactive}, date(2021, 9, 6), date(2021, 9, 20))
	if len(agendas) != 0 {
		t.Errorf("expected no agenda days for an inactive schedule, got %d", len(agendas))
	}
}

// The range bounds are inclusive on both ends.
func TestExpandInclusiveBounds(t *testing.T) {
	t.Parallel()

	s := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly})

	if got := Expand([]*models.Schedule{s}, date(2021, 9, 6), date(2021, 9, 6)); len(got) != 1 {
		t.Errorf("single-day range covering the occurrence: got %d days", len(got))
	}
	if got := Expand([]*models.Schedule{s}, date(2021, 9, 7), date(2021, 9, 6)); len(got) != 0 {
		t.Errorf("inverted range must be empty, got %d days", len(got))
	}
}
