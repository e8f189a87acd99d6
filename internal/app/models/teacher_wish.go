package models

// WishPreference grades how a teacher feels about a weekly slot.
type WishPreference string

const (
	WishGood WishPreference = "GOOD"
	WishBad  WishPreference = "BAD"
)

// TeacherWish records a teacher's declared preference for one weekly slot.
// Wishes are advisory: the scheduler surfaces them when placing a lesson
// but never enforces them.
type TeacherWish struct {
	ID         int64          `json:"id"`
	TeacherID  int64          `json:"teacherId"`
	DayOfWeek  DayOfWeek      `json:"dayOfWeek"`
	Parity     Parity         `json:"evenOdd"`
	PeriodID   int64          `json:"classId"`
	Preference WishPreference `json:"preference"`
}
