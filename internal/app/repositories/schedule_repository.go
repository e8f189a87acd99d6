package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmelnyk/timetable/internal/app/models"
	"github.com/vmelnyk/timetable/internal/pkg/apperrors"
)

// scheduleSelect fetches a schedule row with its period, room and lesson,
// and the lesson's teacher, subject, group and semester, so the caller can
// evaluate the active predicate and the recurrence rules on a complete
// snapshot without further queries.
const scheduleSelect = `
	SELECT s.id, s.day_of_week, s.parity,
	       p.id, p.name, to_char(p.start_time, 'HH24:MI'), to_char(p.end_time, 'HH24:MI'),
	       r.id, r.name, r.type, r.sort_order, r.disabled,
	       l.id, l.hours, l.lesson_type, l.teacher_for_site, l.subject_for_site, l.grouped,
	       t.id, t.name, t.surname, t.patronymic, t.position, t.disabled,
	       sub.id, sub.name, sub.disabled,
	       g.id, g.title, g.disabled,
	       sem.id, sem.description, sem.year, sem.start_day, sem.end_day, sem.current_semester, sem.disabled
	FROM schedules s
	JOIN periods p ON p.id = s.period_id
	JOIN rooms r ON r.id = s.room_id
	JOIN lessons l ON l.id = s.lesson_id
	JOIN teachers t ON t.id = l.teacher_id
	JOIN subjects sub ON sub.id = l.subject_id
	JOIN student_groups g ON g.id = l.group_id
	JOIN semesters sem ON sem.id = l.semester_id
`

// ScheduleRepository handles database operations for schedules. It only
// runs plain fetch, count and write queries; parity and conflict rules
// live in the timetable package.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func scanSchedule(row pgx.Row) (*models.Schedule, error) {
	var (
		s        models.Schedule
		period   models.Period
		room     models.Room
		lesson   models.Lesson
		teacher  models.Teacher
		subject  models.Subject
		group    models.Group
		semester models.Semester
	)
	err := row.Scan(
		&s.ID, &s.DayOfWeek, &s.Parity,
		&period.ID, &period.Name, &period.StartTime, &period.EndTime,
		&room.ID, &room.Name, &room.Type, &room.SortOrder, &room.Disabled,
		&lesson.ID, &lesson.Hours, &lesson.LessonType, &lesson.TeacherForSite, &lesson.SubjectForSite, &lesson.Grouped,
		&teacher.ID, &teacher.Name, &teacher.Surname, &teacher.Patronymic, &teacher.Position, &teacher.Disabled,
		&subject.ID, &subject.Name, &subject.Disabled,
		&group.ID, &group.Title, &group.Disabled,
		&semester.ID, &semester.Description, &semester.Year, &semester.StartDay, &semester.EndDay, &semester.CurrentSemester, &semester.Disabled,
	)
	if err != nil {
		return nil, err
	}
	lesson.Teacher = &teacher
	lesson.Subject = &subject
	lesson.Group = &group
	lesson.Semester = &semester
	s.Period = &period
	s.Room = &room
	s.Lesson = &lesson
	return &s, nil
}

func (r *ScheduleRepository) querySchedules(ctx context.Context, db DBTX, query string, args ...any) ([]*models.Schedule, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

// GetByID retrieves a schedule by ID with all its relations resolved.
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	s, err := scanSchedule(r.db.QueryRow(ctx, scheduleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}
	return s, nil
}

// GetAll retrieves every schedule.
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, r.db, scheduleSelect+` ORDER BY s.id`)
}

// BySemester retrieves all schedules of a semester.
func (r *ScheduleRepository) BySemester(ctx context.Context, semesterID int64) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, r.db, scheduleSelect+` WHERE sem.id = $1 ORDER BY s.id`, semesterID)
}

// BySemesterAndGroup retrieves a group's schedules in a semester.
func (r *ScheduleRepository) BySemesterAndGroup(ctx context.Context, semesterID, groupID int64) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, r.db,
		scheduleSelect+` WHERE sem.id = $1 AND g.id = $2 ORDER BY s.id`, semesterID, groupID)
}

// BySemesterAndTeacher retrieves a teacher's schedules in a semester.
func (r *ScheduleRepository) BySemesterAndTeacher(ctx context.Context, semesterID, teacherID int64) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, r.db,
		scheduleSelect+` WHERE sem.id = $1 AND t.id = $2 ORDER BY s.id`, semesterID, teacherID)
}

// ByDateRangeForTeacher retrieves a teacher's schedules whose semester
// overlaps the [from, to] date range.
func (r *ScheduleRepository) ByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, r.db,
		scheduleSelect+` WHERE sem.start_day <= $2 AND sem.end_day >= $1 AND t.id = $3 ORDER BY s.id`,
		from, to, teacherID)
}

// AtSlot retrieves every schedule occupying a (semester, day, period)
// slot, regardless of group or teacher. Used to work out room occupancy.
func (r *ScheduleRepository) AtSlot(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID int64) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, r.db,
		scheduleSelect+` WHERE sem.id = $1 AND s.day_of_week = $2 AND p.id = $3 ORDER BY s.id`,
		semesterID, day, periodID)
}

// AtSlotForGroup retrieves the schedules occupying a group's weekly slot.
func (r *ScheduleRepository) AtSlotForGroup(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID, groupID int64) ([]*models.Schedule, error) {
	return r.atSlotForGroup(ctx, r.db, semesterID, day, periodID, groupID)
}

// AtSlotForGroupTx is AtSlotForGroup inside a transaction, so the conflict
// re-check of the write path sees a serialized view of the slot.
func (r *ScheduleRepository) AtSlotForGroupTx(ctx context.Context, tx pgx.Tx, semesterID int64, day models.DayOfWeek, periodID, groupID int64) ([]*models.Schedule, error) {
	return r.atSlotForGroup(ctx, tx, semesterID, day, periodID, groupID)
}

func (r *ScheduleRepository) atSlotForGroup(ctx context.Context, db DBTX, semesterID int64, day models.DayOfWeek, periodID, groupID int64) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, db,
		scheduleSelect+` WHERE sem.id = $1 AND s.day_of_week = $2 AND p.id = $3 AND g.id = $4 ORDER BY s.id`,
		semesterID, day, periodID, groupID)
}

// AtSlotForTeacher retrieves the schedules occupying a teacher's weekly slot.
func (r *ScheduleRepository) AtSlotForTeacher(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID, teacherID int64) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, r.db,
		scheduleSelect+` WHERE sem.id = $1 AND s.day_of_week = $2 AND p.id = $3 AND t.id = $4 ORDER BY s.id`,
		semesterID, day, periodID, teacherID)
}

// LockSlot takes a transaction-scoped advisory lock on a group's weekly
// slot key. Concurrent save/update calls targeting the same slot serialize
// here, which keeps the check-then-write sequence atomic.
func (r *ScheduleRepository) LockSlot(ctx context.Context, tx pgx.Tx, semesterID int64, day models.DayOfWeek, periodID, groupID int64) error {
	key := fmt.Sprintf("schedule-slot:%d:%s:%d:%d", semesterID, day, periodID, groupID)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return fmt.Errorf("error locking schedule slot: %w", err)
	}
	return nil
}

// CreateTx inserts a schedule within a transaction.
func (r *ScheduleRepository) CreateTx(ctx context.Context, tx pgx.Tx, s *models.Schedule) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO schedules (day_of_week, parity, period_id, room_id, lesson_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		s.DayOfWeek, s.Parity, s.Period.ID, s.Room.ID, s.Lesson.ID,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("error creating schedule: %w", err)
	}
	return nil
}

// UpdateTx updates a schedule within a transaction.
func (r *ScheduleRepository) UpdateTx(ctx context.Context, tx pgx.Tx, s *models.Schedule) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE schedules
		SET day_of_week = $1, parity = $2, period_id = $3, room_id = $4, lesson_id = $5
		WHERE id = $6`,
		s.DayOfWeek, s.Parity, s.Period.ID, s.Room.ID, s.Lesson.ID, s.ID)
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// Delete removes a schedule by ID.
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// DeleteBySemester removes every schedule of a semester and returns how
// many rows were deleted.
func (r *ScheduleRepository) DeleteBySemester(ctx context.Context, semesterID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM schedules
		WHERE lesson_id IN (SELECT id FROM lessons WHERE semester_id = $1)`, semesterID)
	if err != nil {
		return 0, fmt.Errorf("error deleting schedules by semester: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
