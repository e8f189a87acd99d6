package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vmelnyk/timetable/internal/app/models"
	"github.com/vmelnyk/timetable/internal/db"
)

// The orchestrator reaches the entity store only through these narrow
// interfaces. The pgx repositories implement them in production; tests
// substitute in-memory fakes.

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// ScheduleStore provides schedule rows with their relations resolved,
// plus the transactional write path used by Save and Update.
type ScheduleStore interface {
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	GetAll(ctx context.Context) ([]*models.Schedule, error)
	BySemester(ctx context.Context, semesterID int64) ([]*models.Schedule, error)
	BySemesterAndGroup(ctx context.Context, semesterID, groupID int64) ([]*models.Schedule, error)
	BySemesterAndTeacher(ctx context.Context, semesterID, teacherID int64) ([]*models.Schedule, error)
	ByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]*models.Schedule, error)
	AtSlot(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID int64) ([]*models.Schedule, error)
	AtSlotForGroup(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID, groupID int64) ([]*models.Schedule, error)
	AtSlotForTeacher(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID, teacherID int64) ([]*models.Schedule, error)

	LockSlot(ctx context.Context, tx pgx.Tx, semesterID int64, day models.DayOfWeek, periodID, groupID int64) error
	AtSlotForGroupTx(ctx context.Context, tx pgx.Tx, semesterID int64, day models.DayOfWeek, periodID, groupID int64) ([]*models.Schedule, error)
	CreateTx(ctx context.Context, tx pgx.Tx, s *models.Schedule) error
	UpdateTx(ctx context.Context, tx pgx.Tx, s *models.Schedule) error

	Delete(ctx context.Context, id int64) error
	DeleteBySemester(ctx context.Context, semesterID int64) (int64, error)
}

// SemesterStore resolves semesters.
type SemesterStore interface {
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
	GetCurrent(ctx context.Context) (*models.Semester, error)
}

// LessonStore resolves lessons with teacher, subject, group and semester.
type LessonStore interface {
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
}

// PeriodStore resolves periods.
type PeriodStore interface {
	GetByID(ctx context.Context, id int64) (*models.Period, error)
}

// RoomStore resolves rooms.
type RoomStore interface {
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetAll(ctx context.Context) ([]*models.Room, error)
}

// GroupStore resolves student groups.
type GroupStore interface {
	GetByID(ctx context.Context, id int64) (*models.Group, error)
}

// TeacherStore resolves teachers.
type TeacherStore interface {
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// TemporaryScheduleStore provides one-date overrides and vacations.
type TemporaryScheduleStore interface {
	ByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]*models.TemporarySchedule, error)
	VacationsByDateRange(ctx context.Context, from, to time.Time) ([]*models.TemporarySchedule, error)
}

// TeacherWishStore provides teachers' declared slot preferences.
type TeacherWishStore interface {
	ByTeacher(ctx context.Context, teacherID int64) ([]*models.TeacherWish, error)
}

// ScheduleStores bundles every store the schedule orchestrator consumes.
type ScheduleStores struct {
	Schedules ScheduleStore
	Semesters SemesterStore
	Lessons   LessonStore
	Periods   PeriodStore
	Rooms     RoomStore
	Groups    GroupStore
	Teachers  TeacherStore
	Temporary TemporaryScheduleStore
	Wishes    TeacherWishStore
}
