package timetable

import (
	"testing"

	"github.com/vmelnyk/timetable/internal/app/models"
)

func TestIntersects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		candidate models.Parity
		existing  models.Parity
		want      bool
	}{
		{models.ParityEven, models.ParityEven, true},
		{models.ParityOdd, models.ParityOdd, true},
		{models.ParityEven, models.ParityOdd, false},
		{models.ParityOdd, models.ParityEven, false},
		{models.ParityWeekly, models.ParityEven, true},
		{models.ParityWeekly, models.ParityOdd, true},
		{models.ParityWeekly, models.ParityWeekly, true},
		{models.ParityEven, models.ParityWeekly, true},
		{models.ParityOdd, models.ParityWeekly, true},
	}
	for _, tt := range tests {
		if got := Intersects(tt.candidate, tt.existing); got != tt.want {
			t.Errorf("Intersects(%s, %s) = %v, want %v", tt.candidate, tt.existing, got, tt.want)
		}
	}
}

func TestCountConflicts(t *testing.T) {
	t.Parallel()

	even := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityEven})
	odd := slot(slotOpts{id: 2, day: models.Monday, parity: models.ParityOdd})
	weekly := slot(slotOpts{id: 3, day: models.Monday, parity: models.ParityWeekly})

	tests := []struct {
		name      string
		existing  []*models.Schedule
		candidate models.Parity
		want      int
	}{
		{"empty slot", nil, models.ParityWeekly, 0},
		{"odd candidate against even", []*models.Schedule{even}, models.ParityOdd, 0},
		{"even candidate against even", []*models.Schedule{even}, models.ParityEven, 1},
		{"weekly candidate against even and odd", []*models.Schedule{even, odd}, models.ParityWeekly, 2},
		{"odd candidate against weekly", []*models.Schedule{weekly}, models.ParityOdd, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountConflicts(tt.existing, tt.candidate); got != tt.want {
				t.Errorf("CountConflicts() = %d, want %d", got, tt.want)
			}
		})
	}
}

// A schedule whose room, or any entity its lesson reaches, is disabled
// does not occupy the slot.
func TestCountConflictsSkipsInactive(t *testing.T) {
	t.Parallel()

	disabledRoom := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityEven, disabled: true})
	if got := CountConflicts([]*models.Schedule{disabledRoom}, models.ParityEven); got != 0 {
		t.Errorf("CountConflicts with disabled room = %d, want 0", got)
	}

	disabledTeacher := slot(slotOpts{
		id: 2, day: models.Monday, parity: models.ParityEven,
		teacher: &models.Teacher{ID: 5, Name: "X", Disabled: true},
	})
	if got := CountConflicts([]*models.Schedule{disabledTeacher}, models.ParityEven); got != 0 {
		t.Errorf("CountConflicts with disabled teacher = %d, want 0", got)
	}
}

func TestSlotSuits(t *testing.T) {
	t.Parallel()

	wishes := []*models.TeacherWish{
		{TeacherID: 1, DayOfWeek: models.Monday, Parity: models.ParityEven, PeriodID: 1, Preference: models.WishBad},
		{TeacherID: 1, DayOfWeek: models.Tuesday, Parity: models.ParityWeekly, PeriodID: 2, Preference: models.WishGood},
	}

	tests := []struct {
		name     string
		day      models.DayOfWeek
		parity   models.Parity
		periodID int64
		want     bool
	}{
		{"bad wish hit", models.Monday, models.ParityEven, 1, false},
		{"bad wish hit via weekly", models.Monday, models.ParityWeekly, 1, false},
		{"other parity", models.Monday, models.ParityOdd, 1, true},
		{"other period", models.Monday, models.ParityEven, 2, true},
		{"other day", models.Friday, models.ParityEven, 1, true},
		{"good wish never blocks", models.Tuesday, models.ParityEven, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotSuits(wishes, tt.day, tt.parity, tt.periodID); got != tt.want {
				t.Errorf("SlotSuits() = %v, want %v", got, tt.want)
			}
		})
	}

	if !SlotSuits(nil, models.Monday, models.ParityEven, 1) {
		t.Error("no wishes must mean the slot suits")
	}
}
