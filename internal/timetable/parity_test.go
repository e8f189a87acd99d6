package timetable

import (
	"testing"
	"time"

	"github.com/vmelnyk/timetable/internal/app/models"
)

func TestWeekParity(t *testing.T) {
	t.Parallel()

	semesterStart := date(2021, 9, 6) // Monday

	tests := []struct {
		name string
		date time.Time
		want models.Parity
	}{
		{"semester start day", date(2021, 9, 6), models.ParityEven},
		{"end of first week", date(2021, 9, 12), models.ParityEven},
		{"second week monday", date(2021, 9, 13), models.ParityOdd},
		{"second week friday", date(2021, 9, 17), models.ParityOdd},
		{"third week monday", date(2021, 9, 20), models.ParityEven},
		{"deep into semester", date(2021, 12, 24), models.ParityEven},
		{"tuesday of first week", date(2021, 9, 7), models.ParityEven},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekParity(semesterStart, tt.date); got != tt.want {
				t.Errorf("WeekParity(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

// A semester starting mid-week belongs to the Monday-based week around
// it: every day of that week is even, including the days before the
// start date itself.
func TestWeekParityMidWeekStart(t *testing.T) {
	t.Parallel()

	semesterStart := date(2022, 2, 2) // Wednesday

	tests := []struct {
		date time.Time
		want models.Parity
	}{
		{date(2022, 1, 31), models.ParityEven}, // Monday of the start week
		{date(2022, 2, 2), models.ParityEven},
		{date(2022, 2, 6), models.ParityEven}, // Sunday of the start week
		{date(2022, 2, 7), models.ParityOdd},  // next Monday
		{date(2022, 2, 14), models.ParityEven},
	}
	for _, tt := range tests {
		if got := WeekParity(semesterStart, tt.date); got != tt.want {
			t.Errorf("WeekParity(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestApplies(t *testing.T) {
	t.Parallel()

	evenMonday := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityEven})
	oddMonday := slot(slotOpts{id: 2, day: models.Monday, parity: models.ParityOdd})
	weeklyMonday := slot(slotOpts{id: 3, day: models.Monday, parity: models.ParityWeekly})

	tests := []struct {
		name     string
		schedule *models.Schedule
		date     time.Time
		want     bool
	}{
		{"even schedule on even monday", evenMonday, date(2021, 9, 6), true},
		{"even schedule on odd monday", evenMonday, date(2021, 9, 13), false},
		{"even schedule back on even monday", evenMonday, date(2021, 9, 20), true},
		{"odd schedule on even monday", oddMonday, date(2021, 9, 6), false},
		{"odd schedule on odd monday", oddMonday, date(2021, 9, 13), true},
		{"weekly schedule on even monday", weeklyMonday, date(2021, 9, 6), true},
		{"weekly schedule on odd monday", weeklyMonday, date(2021, 9, 13), true},
		{"wrong weekday", evenMonday, date(2021, 9, 7), false},
		{"before semester", evenMonday, date(2021, 8, 30), false},
		{"after semester", weeklyMonday, date(2021, 12, 27), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Applies(tt.schedule, tt.date); got != tt.want {
				t.Errorf("Applies(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestAppliesIgnoresClockAndZone(t *testing.T) {
	t.Parallel()

	s := slot(slotOpts{id: 1, day: models.Monday, parity: models.ParityEven})
	kyiv := time.FixedZone("EET", 2*60*60)
	late := time.Date(2021, 9, 6, 23, 30, 0, 0, kyiv)

	if !Applies(s, late) {
		t.Error("Applies should not depend on the clock portion of the date")
	}
}

func TestAppliesNoSemester(t *testing.T) {
	t.Parallel()

	s := &models.Schedule{ID: 1, DayOfWeek: models.Monday, Parity: models.ParityWeekly}
	if Applies(s, date(2021, 9, 6)) {
		t.Error("schedule without a semester must not apply to any date")
	}
}
