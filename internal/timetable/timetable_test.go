package timetable

import (
	"time"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// Fixture semester: autumn 2021, starting Monday 2021-09-06 and ending
// Friday 2021-12-24. The week of September 6th is even, September 13th
// odd, September 20th even again.
func autumnSemester() *models.Semester {
	return &models.Semester{
		ID:          1,
		Description: "Autumn 2021",
		Year:        2021,
		StartDay:    date(2021, 9, 6),
		EndDay:      date(2021, 12, 24),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var (
	firstPeriod  = &models.Period{ID: 1, Name: "1", StartTime: "08:20", EndTime: "09:40"}
	secondPeriod = &models.Period{ID: 2, Name: "2", StartTime: "09:50", EndTime: "11:10"}
)

type slotOpts struct {
	id       int64
	day      models.DayOfWeek
	parity   models.Parity
	period   *models.Period
	teacher  *models.Teacher
	group    *models.Group
	semester *models.Semester
	disabled bool
}

func slot(opts slotOpts) *models.Schedule {
	if opts.period == nil {
		opts.period = firstPeriod
	}
	if opts.semester == nil {
		opts.semester = autumnSemester()
	}
	if opts.teacher == nil {
		opts.teacher = &models.Teacher{ID: 1, Name: "Olena", Surname: "Kovalenko"}
	}
	if opts.group == nil {
		opts.group = &models.Group{ID: 1, Title: "KN-21"}
	}
	return &models.Schedule{
		ID:        opts.id,
		DayOfWeek: opts.day,
		Parity:    opts.parity,
		Period:    opts.period,
		Room:      &models.Room{ID: 10, Name: "101", Disabled: opts.disabled},
		Lesson: &models.Lesson{
			ID:             opts.id,
			LessonType:     models.LessonLecture,
			SubjectForSite: "Algorithms",
			TeacherForSite: "O. Kovalenko",
			Teacher:        opts.teacher,
			Subject:        &models.Subject{ID: 1, Name: "Algorithms"},
			Group:          opts.group,
			Semester:       opts.semester,
		},
	}
}
