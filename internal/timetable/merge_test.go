package timetable

import (
	"testing"

	"github.com/vmelnyk/timetable/internal/app/models"
)

func TestMergeBoundOverride(t *testing.T) {
	t.Parallel()

	s := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly})
	agendas := Expand([]*models.Schedule{s}, date(2021, 9, 6), date(2021, 9, 13))

	scheduleID := int64(1)
	override := &models.TemporarySchedule{
		ID:         100,
		Date:       date(2021, 9, 13),
		ScheduleID: &scheduleID,
		Room:       &models.Room{ID: 20, Name: "202"},
	}

	merged := Merge(agendas, []*models.TemporarySchedule{override}, nil)

	if len(merged) != 2 {
		t.Fatalf("expected 2 agenda days, got %d", len(merged))
	}
	if got := merged[0].Slots[0].Occurrences[0].Override; got != nil {
		t.Errorf("first Monday must have no override, got %v", got)
	}
	if got := merged[1].Slots[0].Occurrences[0].Override; got == nil || got.ID != 100 {
		t.Errorf("second Monday must carry override 100, got %v", got)
	}
}

// A standalone vacation covers every occurrence on its date, but a bound
// override for the same date wins for its schedule.
func TestMergeVacationFallback(t *testing.T) {
	t.Parallel()

	a := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly})
	b := slot(slotOpts{id: 2, day: models.Monday, parity: models.ParityWeekly,
		group: &models.Group{ID: 2, Title: "KN-22"}})
	agendas := Expand([]*models.Schedule{a, b}, date(2021, 9, 6), date(2021, 9, 6))

	boundID := int64(1)
	bound := &models.TemporarySchedule{ID: 100, Date: date(2021, 9, 6), ScheduleID: &boundID}
	vacation := &models.TemporarySchedule{ID: 200, Date: date(2021, 9, 6), Vacation: true}

	merged := Merge(agendas, []*models.TemporarySchedule{bound}, []*models.TemporarySchedule{vacation})

	occ := merged[0].Slots[0].Occurrences
	if len(occ) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occ))
	}
	if occ[0].Override == nil || occ[0].Override.ID != 100 {
		t.Errorf("schedule 1 must get its bound override, got %v", occ[0].Override)
	}
	if occ[1].Override == nil || occ[1].Override.ID != 200 {
		t.Errorf("schedule 2 must fall back to the vacation, got %v", occ[1].Override)
	}
}

func TestMergeVacationOnOtherDate(t *testing.T) {
	t.Parallel()

	s := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly})
	agendas := Expand([]*models.Schedule{s}, date(2021, 9, 6), date(2021, 9, 6))

	vacation := &models.TemporarySchedule{ID: 200, Date: date(2021, 9, 13), Vacation: true}
	merged := Merge(agendas, nil, []*models.TemporarySchedule{vacation})

	if got := merged[0].Slots[0].Occurrences[0].Override; got != nil {
		t.Errorf("vacation on another date must not attach, got %v", got)
	}
}

// Merge builds fresh agendas; the expanded input stays untouched.
func TestMergeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly})
	agendas := Expand([]*models.Schedule{s}, date(2021, 9, 6), date(2021, 9, 6))

	vacation := &models.TemporarySchedule{ID: 200, Date: date(2021, 9, 6), Vacation: true}
	Merge(agendas, nil, []*models.TemporarySchedule{vacation})

	if agendas[0].Slots[0].Occurrences[0].Override != nil {
		t.Error("Merge mutated the input agendas")
	}
}
