package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx,
// letting repository queries run either on the pool or inside a
// transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	ScheduleRepository          *ScheduleRepository
	SemesterRepository          *SemesterRepository
	PeriodRepository            *PeriodRepository
	LessonRepository            *LessonRepository
	RoomRepository              *RoomRepository
	GroupRepository             *GroupRepository
	TeacherRepository           *TeacherRepository
	TemporaryScheduleRepository *TemporaryScheduleRepository
	TeacherWishRepository       *TeacherWishRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ScheduleRepository:          NewScheduleRepository(db),
		SemesterRepository:          NewSemesterRepository(db),
		PeriodRepository:            NewPeriodRepository(db),
		LessonRepository:            NewLessonRepository(db),
		RoomRepository:              NewRoomRepository(db),
		GroupRepository:             NewGroupRepository(db),
		TeacherRepository:           NewTeacherRepository(db),
		TemporaryScheduleRepository: NewTemporaryScheduleRepository(db),
		TeacherWishRepository:       NewTeacherWishRepository(db),
	}
}
