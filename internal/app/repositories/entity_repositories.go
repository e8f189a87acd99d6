package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmelnyk/timetable/internal/app/models"
	"github.com/vmelnyk/timetable/internal/pkg/apperrors"
)

// PeriodRepository handles database operations for periods
type PeriodRepository struct {
	db *pgxpool.Pool
}

// NewPeriodRepository creates a new period repository
func NewPeriodRepository(db *pgxpool.Pool) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// GetByID retrieves a period by ID.
func (r *PeriodRepository) GetByID(ctx context.Context, id int64) (*models.Period, error) {
	var p models.Period
	err := r.db.QueryRow(ctx, `
		SELECT id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM periods WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.StartTime, &p.EndTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("error retrieving period: %w", err)
	}
	return &p, nil
}

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	db *pgxpool.Pool
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{db: db}
}

// GetByID retrieves a lesson with its teacher, subject, group and semester.
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	var (
		lesson   models.Lesson
		teacher  models.Teacher
		subject  models.Subject
		group    models.Group
		semester models.Semester
	)
	err := r.db.QueryRow(ctx, `
		SELECT l.id, l.hours, l.lesson_type, l.teacher_for_site, l.subject_for_site, l.grouped,
		       t.id, t.name, t.surname, t.patronymic, t.position, t.disabled,
		       sub.id, sub.name, sub.disabled,
		       g.id, g.title, g.disabled,
		       sem.id, sem.description, sem.year, sem.start_day, sem.end_day, sem.current_semester, sem.disabled
		FROM lessons l
		JOIN teachers t ON t.id = l.teacher_id
		JOIN subjects sub ON sub.id = l.subject_id
		JOIN student_groups g ON g.id = l.group_id
		JOIN semesters sem ON sem.id = l.semester_id
		WHERE l.id = $1`, id,
	).Scan(
		&lesson.ID, &lesson.Hours, &lesson.LessonType, &lesson.TeacherForSite, &lesson.SubjectForSite, &lesson.Grouped,
		&teacher.ID, &teacher.Name, &teacher.Surname, &teacher.Patronymic, &teacher.Position, &teacher.Disabled,
		&subject.ID, &subject.Name, &subject.Disabled,
		&group.ID, &group.Title, &group.Disabled,
		&semester.ID, &semester.Description, &semester.Year, &semester.StartDay, &semester.EndDay, &semester.CurrentSemester, &semester.Disabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("error retrieving lesson: %w", err)
	}
	lesson.Teacher = &teacher
	lesson.Subject = &subject
	lesson.Group = &group
	lesson.Semester = &semester
	return &lesson, nil
}

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomSelect = `SELECT id, name, type, sort_order, disabled FROM rooms`

// GetByID retrieves a room by ID.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	err := r.db.QueryRow(ctx, roomSelect+` WHERE id = $1`, id).
		Scan(&room.ID, &room.Name, &room.Type, &room.SortOrder, &room.Disabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	return &room, nil
}

// GetAll retrieves all enabled rooms in display order.
func (r *RoomRepository) GetAll(ctx context.Context) ([]*models.Room, error) {
	rows, err := r.db.Query(ctx, roomSelect+` WHERE disabled = false ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Type, &room.SortOrder, &room.Disabled); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GroupRepository handles database operations for student groups
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

// GetByID retrieves a group by ID.
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	var g models.Group
	err := r.db.QueryRow(ctx, `SELECT id, title, disabled FROM student_groups WHERE id = $1`, id).
		Scan(&g.ID, &g.Title, &g.Disabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}
	return &g, nil
}

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// GetByID retrieves a teacher by ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var t models.Teacher
	err := r.db.QueryRow(ctx, `
		SELECT id, name, surname, patronymic, position, disabled
		FROM teachers WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Surname, &t.Patronymic, &t.Position, &t.Disabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &t, nil
}

// TeacherWishRepository handles database operations for teacher wishes
type TeacherWishRepository struct {
	db *pgxpool.Pool
}

// NewTeacherWishRepository creates a new teacher wish repository
func NewTeacherWishRepository(db *pgxpool.Pool) *TeacherWishRepository {
	return &TeacherWishRepository{db: db}
}

// ByTeacher retrieves all wishes a teacher has declared.
func (r *TeacherWishRepository) ByTeacher(ctx context.Context, teacherID int64) ([]*models.TeacherWish, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, teacher_id, day_of_week, parity, period_id, preference
		FROM teacher_wishes WHERE teacher_id = $1`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wishes []*models.TeacherWish
	for rows.Next() {
		var w models.TeacherWish
		if err := rows.Scan(&w.ID, &w.TeacherID, &w.DayOfWeek, &w.Parity, &w.PeriodID, &w.Preference); err != nil {
			return nil, err
		}
		wishes = append(wishes, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return wishes, nil
}
