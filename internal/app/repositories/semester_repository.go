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

// SemesterRepository handles database operations for semesters
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{db: db}
}

const semesterSelect = `
	SELECT id, description, year, start_day, end_day, current_semester, disabled
	FROM semesters
`

func (r *SemesterRepository) scanSemester(ctx context.Context, row pgx.Row) (*models.Semester, error) {
	var sem models.Semester
	err := row.Scan(&sem.ID, &sem.Description, &sem.Year, &sem.StartDay, &sem.EndDay, &sem.CurrentSemester, &sem.Disabled)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, &sem); err != nil {
		return nil, err
	}
	if err := r.loadPeriods(ctx, &sem); err != nil {
		return nil, err
	}
	return &sem, nil
}

func (r *SemesterRepository) loadDays(ctx context.Context, sem *models.Semester) error {
	rows, err := r.db.Query(ctx, `
		SELECT day_of_week FROM semester_days WHERE semester_id = $1`, sem.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var day models.DayOfWeek
		if err := rows.Scan(&day); err != nil {
			return err
		}
		sem.DaysOfWeek = append(sem.DaysOfWeek, day)
	}
	return rows.Err()
}

func (r *SemesterRepository) loadPeriods(ctx context.Context, sem *models.Semester) error {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, to_char(p.start_time, 'HH24:MI'), to_char(p.end_time, 'HH24:MI')
		FROM periods p
		JOIN semester_periods sp ON sp.period_id = p.id
		WHERE sp.semester_id = $1
		ORDER BY p.start_time`, sem.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p models.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.StartTime, &p.EndTime); err != nil {
			return err
		}
		sem.Periods = append(sem.Periods, &p)
	}
	return rows.Err()
}

// GetByID retrieves a semester by ID with its weekdays and periods.
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	sem, err := r.scanSemester(ctx, r.db.QueryRow(ctx, semesterSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving semester: %w", err)
	}
	return sem, nil
}

// GetCurrent retrieves the semester marked as current.
func (r *SemesterRepository) GetCurrent(ctx context.Context) (*models.Semester, error) {
	sem, err := r.scanSemester(ctx, r.db.QueryRow(ctx,
		semesterSelect+` WHERE current_semester = true AND disabled = false`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoCurrentSemester
		}
		return nil, fmt.Errorf("error retrieving current semester: %w", err)
	}
	return sem, nil
}
