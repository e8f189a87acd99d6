package timetable

import (
	"testing"

	"github.com/vmelnyk/timetable/internal/app/models"
)

func TestWeekSplitsParities(t *testing.T) {
	t.Parallel()

	even := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityEven})
	odd := slot(slotOpts{id: 2, day: models.Monday, parity: models.ParityOdd})
	weekly := slot(slotOpts{id: 3, day: models.Monday, parity: models.ParityWeekly, period: secondPeriod})

	days := Week([]*models.Schedule{weekly, odd, even})

	if len(days) != 1 || days[0].Day != models.Monday {
		t.Fatalf("expected a single Monday, got %v", days)
	}
	slots := days[0].Slots
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}

	first := slots[0]
	if len(first.Even) != 1 || first.Even[0].ID != 1 {
		t.Errorf("first period even half: want schedule 1, got %v", first.Even)
	}
	if len(first.Odd) != 1 || first.Odd[0].ID != 2 {
		t.Errorf("first period odd half: want schedule 2, got %v", first.Odd)
	}

	// WEEKLY shows in both halves.
	second := slots[1]
	if len(second.Even) != 1 || len(second.Odd) != 1 || second.Even[0].ID != 3 || second.Odd[0].ID != 3 {
		t.Errorf("weekly schedule must fill both halves, got even=%v odd=%v", second.Even, second.Odd)
	}
}

func TestWeekDayOrder(t *testing.T) {
	t.Parallel()

	friday := slot(slotOpts{id: 1, day: models.Friday, parity: models.ParityWeekly})
	monday := slot(slotOpts{id: 2, day: models.Monday, parity: models.ParityWeekly})
	wednesday := slot(slotOpts{id: 3, day: models.Wednesday, parity: models.ParityWeekly})

	days := Week([]*models.Schedule{friday, monday, wednesday})

	want := []models.DayOfWeek{models.Monday, models.Wednesday, models.Friday}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i, day := range days {
		if day.Day != want[i] {
			t.Errorf("day %d = %s, want %s", i, day.Day, want[i])
		}
	}
}

func TestWeekSkipsInactive(t *testing.T) {
	t.Parallel()

	inactive := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityWeekly, disabled: true})
	if days := Week([]*models.Schedule{inactive}); len(days) != 0 {
		t.Errorf("inactive schedules must not appear, got %v", days)
	}
}
