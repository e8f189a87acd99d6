package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmelnyk/timetable/internal/app/models"
)

// temporaryScheduleSelect fetches an override row with its optional
// related entities. Overrides reference entities loosely, so everything
// except the date is nullable.
const temporaryScheduleSelect = `
	SELECT ts.id, ts.date, ts.schedule_id, ts.lesson_type,
	       ts.teacher_for_site, ts.subject_for_site, ts.link_to_meeting,
	       ts.grouped, ts.vacation,
	       r.id, r.name, r.type, r.sort_order, r.disabled,
	       t.id, t.name, t.surname, t.patronymic, t.position, t.disabled,
	       sub.id, sub.name, sub.disabled,
	       g.id, g.title, g.disabled,
	       p.id, p.name, to_char(p.start_time, 'HH24:MI'), to_char(p.end_time, 'HH24:MI')
	FROM temporary_schedules ts
	LEFT JOIN rooms r ON r.id = ts.room_id
	LEFT JOIN teachers t ON t.id = ts.teacher_id
	LEFT JOIN subjects sub ON sub.id = ts.subject_id
	LEFT JOIN student_groups g ON g.id = ts.group_id
	LEFT JOIN periods p ON p.id = ts.period_id
`

// TemporaryScheduleRepository handles database operations for one-date
// schedule overrides and vacations.
type TemporaryScheduleRepository struct {
	db *pgxpool.Pool
}

// NewTemporaryScheduleRepository creates a new temporary schedule repository
func NewTemporaryScheduleRepository(db *pgxpool.Pool) *TemporaryScheduleRepository {
	return &TemporaryScheduleRepository{db: db}
}

func (r *TemporaryScheduleRepository) query(ctx context.Context, query string, args ...any) ([]*models.TemporarySchedule, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.TemporarySchedule
	for rows.Next() {
		var (
			ts                                 models.TemporarySchedule
			lessonType                         *string
			teacherForSite, subjectForSite     *string
			linkToMeeting                      *string
			roomID                             *int64
			roomName, roomType                 *string
			roomSort                           *int
			roomDisabled                       *bool
			teacherID                          *int64
			tName, tSurname, tPatronymic, tPos *string
			tDisabled                          *bool
			subjectID                          *int64
			subjectName                        *string
			subjectDisabled                    *bool
			groupID                            *int64
			groupTitle                         *string
			groupDisabled                      *bool
			periodID                           *int64
			periodName, periodStart, periodEnd *string
		)
		err := rows.Scan(
			&ts.ID, &ts.Date, &ts.ScheduleID, &lessonType,
			&teacherForSite, &subjectForSite, &linkToMeeting,
			&ts.Grouped, &ts.Vacation,
			&roomID, &roomName, &roomType, &roomSort, &roomDisabled,
			&teacherID, &tName, &tSurname, &tPatronymic, &tPos, &tDisabled,
			&subjectID, &subjectName, &subjectDisabled,
			&groupID, &groupTitle, &groupDisabled,
			&periodID, &periodName, &periodStart, &periodEnd,
		)
		if err != nil {
			return nil, err
		}
		if lessonType != nil {
			lt := models.LessonType(*lessonType)
			ts.LessonType = &lt
		}
		if teacherForSite != nil {
			ts.TeacherForSite = *teacherForSite
		}
		if subjectForSite != nil {
			ts.SubjectForSite = *subjectForSite
		}
		if linkToMeeting != nil {
			ts.LinkToMeeting = *linkToMeeting
		}
		if roomID != nil {
			ts.Room = &models.Room{ID: *roomID, Name: *roomName, Type: *roomType, SortOrder: *roomSort, Disabled: *roomDisabled}
		}
		if teacherID != nil {
			ts.Teacher = &models.Teacher{ID: *teacherID, Name: *tName, Surname: *tSurname, Patronymic: *tPatronymic, Position: *tPos, Disabled: *tDisabled}
		}
		if subjectID != nil {
			ts.Subject = &models.Subject{ID: *subjectID, Name: *subjectName, Disabled: *subjectDisabled}
		}
		if groupID != nil {
			ts.Group = &models.Group{ID: *groupID, Title: *groupTitle, Disabled: *groupDisabled}
		}
		if periodID != nil {
			ts.Period = &models.Period{ID: *periodID, Name: *periodName, StartTime: *periodStart, EndTime: *periodEnd}
		}
		result = append(result, &ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ByDateRangeForTeacher retrieves schedule-bound overrides within the date
// range whose base schedule belongs to the teacher.
func (r *TemporaryScheduleRepository) ByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]*models.TemporarySchedule, error) {
	return r.query(ctx, temporaryScheduleSelect+`
		WHERE ts.date BETWEEN $1 AND $2
		  AND ts.vacation = false
		  AND ts.schedule_id IN (
			SELECT s.id FROM schedules s
			JOIN lessons l ON l.id = s.lesson_id
			WHERE l.teacher_id = $3)
		ORDER BY ts.date, ts.id`, from, to, teacherID)
}

// VacationsByDateRange retrieves standalone vacation records within the
// date range. Vacations apply to every schedule on their date.
func (r *TemporaryScheduleRepository) VacationsByDateRange(ctx context.Context, from, to time.Time) ([]*models.TemporarySchedule, error) {
	return r.query(ctx, temporaryScheduleSelect+`
		WHERE ts.date BETWEEN $1 AND $2
		  AND ts.vacation = true
		  AND ts.schedule_id IS NULL
		ORDER BY ts.date, ts.id`, from, to)
}
