package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/vmelnyk/timetable/internal/app/models"
	"github.com/vmelnyk/timetable/internal/app/models/dto"
	"github.com/vmelnyk/timetable/internal/pkg/apperrors"
	"github.com/vmelnyk/timetable/internal/timetable"
)

// ScheduleService orchestrates the recurring timetable: it validates
// proposed slots against the conflict rules before any write, and
// assembles the nested week and date-range views from fetched schedule
// snapshots. All recurrence arithmetic is delegated to the timetable
// package.
type ScheduleService struct {
	stores ScheduleStores
	tx     TxRunner
	logger zerolog.Logger
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(stores ScheduleStores, tx TxRunner, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		stores: stores,
		tx:     tx,
		logger: logger,
	}
}

// GetByID retrieves a schedule by ID.
func (s *ScheduleService) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	return s.stores.Schedules.GetByID(ctx, id)
}

// GetAll retrieves every schedule.
func (s *ScheduleService) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	return s.stores.Schedules.GetAll(ctx)
}

// GetSchedulesBySemester retrieves the active schedules of a semester.
func (s *ScheduleService) GetSchedulesBySemester(ctx context.Context, semesterID int64) ([]*models.Schedule, error) {
	if _, err := s.stores.Semesters.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}
	schedules, err := s.stores.Schedules.BySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	return activeOnly(schedules), nil
}

// Save places a lesson into a weekly slot. The group conflict check and
// the insert run inside one transaction serialized on the slot key, so
// two concurrent saves for the same slot cannot both pass the check.
func (s *ScheduleService) Save(ctx context.Context, req dto.CreateScheduleRequest) (*models.Schedule, error) {
	schedule, semesterID, err := s.resolveCandidate(ctx, req, 0)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("lessonId", req.LessonID).
		Str("day", string(req.DayOfWeek)).
		Str("parity", string(req.Parity)).
		Int64("periodId", req.PeriodID).
		Msg("Saving schedule")

	err = s.writeChecked(ctx, schedule, semesterID, func(ctx context.Context, tx pgx.Tx) error {
		return s.stores.Schedules.CreateTx(ctx, tx, schedule)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// Update moves an existing schedule to a new slot under the same conflict
// rules. The schedule being updated does not conflict with itself.
func (s *ScheduleService) Update(ctx context.Context, id int64, req dto.CreateScheduleRequest) (*models.Schedule, error) {
	if _, err := s.stores.Schedules.GetByID(ctx, id); err != nil {
		return nil, err
	}
	schedule, semesterID, err := s.resolveCandidate(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("scheduleId", id).Msg("Updating schedule")

	err = s.writeChecked(ctx, schedule, semesterID, func(ctx context.Context, tx pgx.Tx) error {
		return s.stores.Schedules.UpdateTx(ctx, tx, schedule)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// resolveCandidate validates the referenced entities and builds the
// schedule model. For updates, id is the schedule being moved; for saves
// it is zero.
func (s *ScheduleService) resolveCandidate(ctx context.Context, req dto.CreateScheduleRequest, id int64) (*models.Schedule, int64, error) {
	lesson, err := s.stores.Lessons.GetByID(ctx, req.LessonID)
	if err != nil {
		return nil, 0, err
	}
	period, err := s.stores.Periods.GetByID(ctx, req.PeriodID)
	if err != nil {
		return nil, 0, err
	}
	room, err := s.stores.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, 0, err
	}

	// The schedule belongs to whatever semester its lesson belongs to, so
	// the conflict check must key on that semester. A request naming a
	// different one would make the check look in the wrong place.
	var semesterID int64
	if lesson.Semester != nil {
		semesterID = lesson.Semester.ID
	} else {
		current, err := s.stores.Semesters.GetCurrent(ctx)
		if err != nil {
			return nil, 0, err
		}
		semesterID = current.ID
	}
	if req.SemesterID != 0 && req.SemesterID != semesterID {
		return nil, 0, apperrors.NewBadRequestError(
			fmt.Sprintf("lesson %d belongs to semester %d, not %d", lesson.ID, semesterID, req.SemesterID))
	}

	return &models.Schedule{
		ID:        id,
		DayOfWeek: req.DayOfWeek,
		Parity:    req.Parity,
		Period:    period,
		Room:      room,
		Lesson:    lesson,
	}, semesterID, nil
}

// writeChecked runs the check-then-write sequence atomically: lock the
// slot, re-read the occupying schedules, count parity conflicts for the
// group, and only then apply the write. A conflict aborts the transaction
// with no partial persistence.
func (s *ScheduleService) writeChecked(ctx context.Context, schedule *models.Schedule, semesterID int64, write func(context.Context, pgx.Tx) error) error {
	groupID := schedule.Lesson.Group.ID
	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.stores.Schedules.LockSlot(ctx, tx, semesterID, schedule.DayOfWeek, schedule.Period.ID, groupID); err != nil {
			return err
		}
		existing, err := s.stores.Schedules.AtSlotForGroupTx(ctx, tx, semesterID, schedule.DayOfWeek, schedule.Period.ID, groupID)
		if err != nil {
			return err
		}
		existing = excludeID(existing, schedule.ID)
		if timetable.CountConflicts(existing, schedule.Parity) != 0 {
			s.logger.Warn().
				Int64("groupId", groupID).
				Str("day", string(schedule.DayOfWeek)).
				Int64("periodId", schedule.Period.ID).
				Msg("Schedule slot conflict for group")
			return apperrors.NewConflictError(
				fmt.Sprintf("group %d already has a lesson at %s, class %d", groupID, schedule.DayOfWeek, schedule.Period.ID))
		}
		return write(ctx, tx)
	})
}

// Delete removes a schedule by ID.
func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	s.logger.Info().Int64("scheduleId", id).Msg("Deleting schedule")
	return s.stores.Schedules.Delete(ctx, id)
}

// DeleteBySemester removes every schedule of a semester.
func (s *ScheduleService) DeleteBySemester(ctx context.Context, semesterID int64) (int64, error) {
	if _, err := s.stores.Semesters.GetByID(ctx, semesterID); err != nil {
		return 0, err
	}
	s.logger.Info().Int64("semesterId", semesterID).Msg("Deleting schedules by semester")
	return s.stores.Schedules.DeleteBySemester(ctx, semesterID)
}

// GetInfoForCreatingSchedule checks a candidate slot and reports what the
// client needs to finish placing the lesson: a hard group-conflict reject,
// advisory teacher availability, the rooms still free at the slot, and
// whether the slot suits the teacher's wishes.
func (s *ScheduleService) GetInfoForCreatingSchedule(ctx context.Context, semesterID int64, day models.DayOfWeek, parity models.Parity, periodID, lessonID int64) (*dto.CreateScheduleInfoDTO, error) {
	lesson, err := s.stores.Lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if _, err := s.stores.Periods.GetByID(ctx, periodID); err != nil {
		return nil, err
	}
	if _, err := s.stores.Semesters.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}

	groupSlot, err := s.stores.Schedules.AtSlotForGroup(ctx, semesterID, day, periodID, lesson.Group.ID)
	if err != nil {
		return nil, err
	}
	if timetable.CountConflicts(groupSlot, parity) != 0 {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("group %d already has a lesson at %s, class %d", lesson.Group.ID, day, periodID))
	}

	teacherSlot, err := s.stores.Schedules.AtSlotForTeacher(ctx, semesterID, day, periodID, lesson.Teacher.ID)
	if err != nil {
		return nil, err
	}

	freeRooms, err := s.freeRoomsForSlot(ctx, semesterID, day, parity, periodID)
	if err != nil {
		return nil, err
	}

	wishes, err := s.stores.Wishes.ByTeacher(ctx, lesson.Teacher.ID)
	if err != nil {
		return nil, err
	}

	return &dto.CreateScheduleInfoDTO{
		TeacherAvailable:    timetable.CountConflicts(teacherSlot, parity) == 0,
		Rooms:               freeRooms,
		ClassSuitsToTeacher: timetable.SlotSuits(wishes, day, parity, periodID),
	}, nil
}

// freeRoomsForSlot lists rooms not occupied by an active schedule whose
// parity intersects the candidate's at the given slot.
func (s *ScheduleService) freeRoomsForSlot(ctx context.Context, semesterID int64, day models.DayOfWeek, parity models.Parity, periodID int64) ([]dto.RoomDTO, error) {
	allRooms, err := s.stores.Rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	slotSchedules, err := s.stores.Schedules.AtSlot(ctx, semesterID, day, periodID)
	if err != nil {
		return nil, err
	}

	occupied := make(map[int64]bool)
	for _, sch := range slotSchedules {
		if sch.IsActive() && timetable.Intersects(parity, sch.Parity) && sch.Room != nil {
			occupied[sch.Room.ID] = true
		}
	}

	free := make([]dto.RoomDTO, 0, len(allRooms))
	for _, room := range allRooms {
		if !occupied[room.ID] {
			free = append(free, dto.NewRoomDTO(room))
		}
	}
	return free, nil
}

// GetFullScheduleForGroup assembles the typical-week view of one group in
// a semester: days in week order, periods by start time, each split into
// even and odd lessons.
func (s *ScheduleService) GetFullScheduleForGroup(ctx context.Context, semesterID, groupID int64) (*dto.ScheduleForGroupDTO, error) {
	group, err := s.stores.Groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.stores.Schedules.BySemesterAndGroup(ctx, semesterID, groupID)
	if err != nil {
		return nil, err
	}
	view := groupWeekDTO(timetable.Week(schedules))
	return &dto.ScheduleForGroupDTO{Group: dto.NewGroupDTO(group), Days: view}, nil
}

// GetFullScheduleForSemester assembles the typical-week view of every
// group that has schedules in the semester.
func (s *ScheduleService) GetFullScheduleForSemester(ctx context.Context, semesterID int64) (*dto.ScheduleFullDTO, error) {
	semester, err := s.stores.Semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.stores.Schedules.BySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[int64][]*models.Schedule)
	var groups []*models.Group
	for _, sch := range schedules {
		if !sch.IsActive() {
			continue
		}
		g := sch.Lesson.Group
		if _, seen := byGroup[g.ID]; !seen {
			groups = append(groups, g)
		}
		byGroup[g.ID] = append(byGroup[g.ID], sch)
	}

	full := &dto.ScheduleFullDTO{Semester: dto.NewSemesterDTO(semester)}
	for _, g := range groups {
		full.Schedule = append(full.Schedule, dto.ScheduleForGroupDTO{
			Group: dto.NewGroupDTO(g),
			Days:  groupWeekDTO(timetable.Week(byGroup[g.ID])),
		})
	}
	return full, nil
}

// GetScheduleForTeacher assembles the typical-week view of one teacher,
// split into even-week and odd-week halves per day.
func (s *ScheduleService) GetScheduleForTeacher(ctx context.Context, semesterID, teacherID int64) (*dto.ScheduleForTeacherDTO, error) {
	semester, err := s.stores.Semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	teacher, err := s.stores.Teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.stores.Schedules.BySemesterAndTeacher(ctx, semesterID, teacherID)
	if err != nil {
		return nil, err
	}

	out := &dto.ScheduleForTeacherDTO{
		Semester: dto.NewSemesterDTO(semester),
		Teacher:  dto.NewTeacherDTO(teacher),
	}
	for _, day := range timetable.Week(schedules) {
		dayDTO := dto.DayWithClassesForTeacherDTO{Day: day.Day}
		for _, slot := range day.Slots {
			if len(slot.Even) > 0 {
				dayDTO.EvenWeek.Periods = append(dayDTO.EvenWeek.Periods, teacherClassDTO(slot.Period, slot.Even))
			}
			if len(slot.Odd) > 0 {
				dayDTO.OddWeek.Periods = append(dayDTO.OddWeek.Periods, teacherClassDTO(slot.Period, slot.Odd))
			}
		}
		out.Days = append(out.Days, dayDTO)
	}
	return out, nil
}

// GetScheduleForRooms assembles per-room typical-week occupancy for a
// semester, rooms in display order.
func (s *ScheduleService) GetScheduleForRooms(ctx context.Context, semesterID int64) ([]dto.ScheduleForRoomDTO, error) {
	if _, err := s.stores.Semesters.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}
	rooms, err := s.stores.Rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	schedules, err := s.stores.Schedules.BySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[int64][]*models.Schedule)
	for _, sch := range schedules {
		if sch.Room != nil {
			byRoom[sch.Room.ID] = append(byRoom[sch.Room.ID], sch)
		}
	}

	out := make([]dto.ScheduleForRoomDTO, 0, len(rooms))
	for _, room := range rooms {
		roomDTO := dto.ScheduleForRoomDTO{RoomID: room.ID, RoomName: room.Name, RoomType: room.Type}
		for _, day := range timetable.Week(byRoom[room.ID]) {
			dayDTO := dto.DayWithClassesForRoomDTO{Day: day.Day}
			for _, slot := range day.Slots {
				dayDTO.Classes = append(dayDTO.Classes, dto.RoomClassDTO{
					Period: dto.NewPeriodDTO(slot.Period),
					Even:   lessonDTOs(slot.Even),
					Odd:    lessonDTOs(slot.Odd),
				})
			}
			roomDTO.Days = append(roomDTO.Days, dayDTO)
		}
		out = append(out, roomDTO)
	}
	return out, nil
}

// ScheduleByDateRangeForTeacher expands a teacher's weekly schedules into
// concrete dated occurrences over [from, to].
func (s *ScheduleService) ScheduleByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]dto.DailyAgendaDTO, error) {
	agendas, err := s.expandForTeacher(ctx, from, to, teacherID)
	if err != nil {
		return nil, err
	}
	return dto.NewDailyAgendaDTOs(agendas), nil
}

// TemporaryScheduleByDateRangeForTeacher is ScheduleByDateRangeForTeacher
// with the one-date overrides and vacations merged in.
func (s *ScheduleService) TemporaryScheduleByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]dto.DailyAgendaDTO, error) {
	agendas, err := s.expandForTeacher(ctx, from, to, teacherID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.stores.Temporary.ByDateRangeForTeacher(ctx, from, to, teacherID)
	if err != nil {
		return nil, err
	}
	vacations, err := s.stores.Temporary.VacationsByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return dto.NewDailyAgendaDTOs(timetable.Merge(agendas, overrides, vacations)), nil
}

// TemporarySchedulesForTeacher lists the raw one-date overrides touching
// a teacher's schedules in [from, to], plus the vacations in the range.
func (s *ScheduleService) TemporarySchedulesForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]*models.TemporarySchedule, error) {
	if _, err := s.stores.Teachers.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	overrides, err := s.stores.Temporary.ByDateRangeForTeacher(ctx, from, to, teacherID)
	if err != nil {
		return nil, err
	}
	vacations, err := s.stores.Temporary.VacationsByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return append(overrides, vacations...), nil
}

func (s *ScheduleService) expandForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]timetable.DailyAgenda, error) {
	if _, err := s.stores.Teachers.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	schedules, err := s.stores.Schedules.ByDateRangeForTeacher(ctx, from, to, teacherID)
	if err != nil {
		return nil, err
	}
	return timetable.Expand(schedules, from, to), nil
}

func activeOnly(schedules []*models.Schedule) []*models.Schedule {
	out := make([]*models.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

func excludeID(schedules []*models.Schedule, id int64) []*models.Schedule {
	if id == 0 {
		return schedules
	}
	out := make([]*models.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

func lessonDTOs(schedules []*models.Schedule) []dto.LessonInScheduleDTO {
	out := make([]dto.LessonInScheduleDTO, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, dto.NewLessonInScheduleDTO(s))
	}
	return out
}

func teacherClassDTO(period *models.Period, schedules []*models.Schedule) dto.ClassForTeacherDTO {
	return dto.ClassForTeacherDTO{
		Period:  dto.NewPeriodDTO(period),
		Lessons: lessonDTOs(schedules),
	}
}

func groupWeekDTO(days []timetable.WeekDay) []dto.DayWithClassesDTO {
	var out []dto.DayWithClassesDTO
	for _, day := range days {
		dayDTO := dto.DayWithClassesDTO{Day: day.Day}
		for _, slot := range day.Slots {
			class := dto.ClassInScheduleDTO{Period: dto.NewPeriodDTO(slot.Period)}
			if len(slot.Even) > 0 {
				l := dto.NewLessonInScheduleDTO(slot.Even[0])
				class.Weeks.Even = &l
			}
			if len(slot.Odd) > 0 {
				l := dto.NewLessonInScheduleDTO(slot.Odd[0])
				class.Weeks.Odd = &l
			}
			dayDTO.Classes = append(dayDTO.Classes, class)
		}
		out = append(out, dayDTO)
	}
	return out
}
