package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/vmelnyk/timetable/internal/app/models"
	"github.com/vmelnyk/timetable/internal/app/models/dto"
	"github.com/vmelnyk/timetable/internal/db"
	"github.com/vmelnyk/timetable/internal/pkg/apperrors"
)

// fakeTxRunner satisfies TxRunner without a database: the callback runs
// with a nil transaction, which the fake stores ignore.
type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	return fn(ctx, nil)
}

type fakeScheduleStore struct {
	byID        map[int64]*models.Schedule
	slotGroup   []*models.Schedule
	slotTeacher []*models.Schedule
	slot        []*models.Schedule

	lockCalls int
	created   []*models.Schedule
	updated   []*models.Schedule
}

func (f *fakeScheduleStore) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.ErrScheduleNotFound, "schedule not found")
	}
	return s, nil
}

func (f *fakeScheduleStore) GetAll(ctx context.Context) ([]*models.Schedule, error) { return nil, nil }
func (f *fakeScheduleStore) BySemester(ctx context.Context, semesterID int64) ([]*models.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleStore) BySemesterAndGroup(ctx context.Context, semesterID, groupID int64) ([]*models.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleStore) BySemesterAndTeacher(ctx context.Context, semesterID, teacherID int64) ([]*models.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleStore) ByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]*models.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleStore) AtSlot(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID int64) ([]*models.Schedule, error) {
	return f.slot, nil
}
func (f *fakeScheduleStore) AtSlotForGroup(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID, groupID int64) ([]*models.Schedule, error) {
	return f.slotGroup, nil
}
func (f *fakeScheduleStore) AtSlotForTeacher(ctx context.Context, semesterID int64, day models.DayOfWeek, periodID, teacherID int64) ([]*models.Schedule, error) {
	return f.slotTeacher, nil
}

func (f *fakeScheduleStore) LockSlot(ctx context.Context, tx pgx.Tx, semesterID int64, day models.DayOfWeek, periodID, groupID int64) error {
	f.lockCalls++
	return nil
}
// AtSlotForGroupTx filters by semester the way the real query does: an
// occupant only shows up when the check asks about its lesson's semester.
func (f *fakeScheduleStore) AtSlotForGroupTx(ctx context.Context, tx pgx.Tx, semesterID int64, day models.DayOfWeek, periodID, groupID int64) ([]*models.Schedule, error) {
	var out []*models.Schedule
	for _, s := range f.slotGroup {
		if sem := s.Semester(); sem != nil && sem.ID == semesterID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeScheduleStore) CreateTx(ctx context.Context, tx pgx.Tx, s *models.Schedule) error {
	s.ID = int64(len(f.created) + 1000)
	f.created = append(f.created, s)
	return nil
}
func (f *fakeScheduleStore) UpdateTx(ctx context.Context, tx pgx.Tx, s *models.Schedule) error {
	f.updated = append(f.updated, s)
	return nil
}

func (f *fakeScheduleStore) Delete(ctx context.Context, id int64) error { return nil }
func (f *fakeScheduleStore) DeleteBySemester(ctx context.Context, semesterID int64) (int64, error) {
	return 0, nil
}

type fakeSemesterStore struct{ byID map[int64]*models.Semester }

func (f *fakeSemesterStore) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.ErrSemesterNotFound, "semester not found")
	}
	return s, nil
}
func (f *fakeSemesterStore) GetCurrent(ctx context.Context) (*models.Semester, error) {
	for _, s := range f.byID {
		if s.CurrentSemester {
			return s, nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.ErrNoCurrentSemester, "no current semester")
}

type fakeLessonStore struct{ byID map[int64]*models.Lesson }

func (f *fakeLessonStore) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.ErrLessonNotFound, "lesson not found")
	}
	return l, nil
}

type fakePeriodStore struct{ byID map[int64]*models.Period }

func (f *fakePeriodStore) GetByID(ctx context.Context, id int64) (*models.Period, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.ErrPeriodNotFound, "period not found")
	}
	return p, nil
}

type fakeRoomStore struct{ rooms []*models.Room }

func (f *fakeRoomStore) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.NewNotFoundError(apperrors.ErrRoomNotFound, "room not found")
}
func (f *fakeRoomStore) GetAll(ctx context.Context) ([]*models.Room, error) { return f.rooms, nil }

type fakeGroupStore struct{ byID map[int64]*models.Group }

func (f *fakeGroupStore) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.ErrGroupNotFound, "group not found")
	}
	return g, nil
}

type fakeTeacherStore struct{ byID map[int64]*models.Teacher }

func (f *fakeTeacherStore) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.ErrTeacherNotFound, "teacher not found")
	}
	return t, nil
}

type fakeTemporaryStore struct {
	overrides []*models.TemporarySchedule
	vacations []*models.TemporarySchedule
}

func (f *fakeTemporaryStore) ByDateRangeForTeacher(ctx context.Context, from, to time.Time, teacherID int64) ([]*models.TemporarySchedule, error) {
	return f.overrides, nil
}
func (f *fakeTemporaryStore) VacationsByDateRange(ctx context.Context, from, to time.Time) ([]*models.TemporarySchedule, error) {
	return f.vacations, nil
}

type fakeWishStore struct{ wishes []*models.TeacherWish }

func (f *fakeWishStore) ByTeacher(ctx context.Context, teacherID int64) ([]*models.TeacherWish, error) {
	return f.wishes, nil
}

// fixture wires a service over fully populated fakes: one semester, one
// lesson (teacher 1, group 1), two rooms, one period.
type fixture struct {
	service   *ScheduleService
	schedules *fakeScheduleStore
	tx        *fakeTxRunner
	semester  *models.Semester
	lesson    *models.Lesson
}

func newFixture() *fixture {
	semester := &models.Semester{
		ID:              1,
		Year:            2021,
		StartDay:        time.Date(2021, 9, 6, 0, 0, 0, 0, time.UTC),
		EndDay:          time.Date(2021, 12, 24, 0, 0, 0, 0, time.UTC),
		CurrentSemester: true,
	}
	teacher := &models.Teacher{ID: 1, Name: "Olena", Surname: "Kovalenko"}
	group := &models.Group{ID: 1, Title: "KN-21"}
	lesson := &models.Lesson{
		ID:       1,
		Teacher:  teacher,
		Subject:  &models.Subject{ID: 1, Name: "Algorithms"},
		Group:    group,
		Semester: semester,
	}

	schedules := &fakeScheduleStore{byID: map[int64]*models.Schedule{}}
	tx := &fakeTxRunner{}

	stores := ScheduleStores{
		Schedules: schedules,
		Semesters: &fakeSemesterStore{byID: map[int64]*models.Semester{1: semester}},
		Lessons:   &fakeLessonStore{byID: map[int64]*models.Lesson{1: lesson}},
		Periods: &fakePeriodStore{byID: map[int64]*models.Period{
			1: {ID: 1, Name: "1", StartTime: "08:20", EndTime: "09:40"},
		}},
		Rooms: &fakeRoomStore{rooms: []*models.Room{
			{ID: 10, Name: "101"},
			{ID: 11, Name: "102"},
		}},
		Groups:    &fakeGroupStore{byID: map[int64]*models.Group{1: group}},
		Teachers:  &fakeTeacherStore{byID: map[int64]*models.Teacher{1: teacher}},
		Temporary: &fakeTemporaryStore{},
		Wishes:    &fakeWishStore{},
	}

	return &fixture{
		service:   NewScheduleService(stores, tx, zerolog.Nop()),
		schedules: schedules,
		tx:        tx,
		semester:  semester,
		lesson:    lesson,
	}
}

// occupying returns an active schedule already sitting in the fixture's
// slot with the given parity.
func (f *fixture) occupying(id int64, parity models.Parity) *models.Schedule {
	return &models.Schedule{
		ID:        id,
		DayOfWeek: models.Monday,
		Parity:    parity,
		Period:    &models.Period{ID: 1, StartTime: "08:20"},
		Room:      &models.Room{ID: 10, Name: "101"},
		Lesson:    f.lesson,
	}
}

func saveRequest() dto.CreateScheduleRequest {
	return dto.CreateScheduleRequest{
		DayOfWeek: models.Monday,
		Parity:    models.ParityEven,
		PeriodID:  1,
		RoomID:    10,
		LessonID:  1,
	}
}

func TestSaveFreeSlot(t *testing.T) {
	t.Parallel()
	f := newFixture()

	schedule, err := f.service.Save(context.Background(), saveRequest())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if len(f.schedules.created) != 1 {
		t.Fatalf("expected 1 created schedule, got %d", len(f.schedules.created))
	}
	if f.schedules.lockCalls != 1 {
		t.Errorf("expected the slot to be locked once, got %d", f.schedules.lockCalls)
	}
	if f.tx.calls != 1 {
		t.Errorf("expected one transaction, got %d", f.tx.calls)
	}
	if schedule.ID == 0 {
		t.Error("saved schedule must carry the assigned id")
	}
}

func TestSaveConflictRejectedWithoutWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		existing  models.Parity
		candidate models.Parity
		conflict  bool
	}{
		{"even vs even", models.ParityEven, models.ParityEven, true},
		{"weekly vs even", models.ParityWeekly, models.ParityEven, true},
		{"even vs weekly", models.ParityEven, models.ParityWeekly, true},
		{"even vs odd", models.ParityEven, models.ParityOdd, false},
		{"odd vs even", models.ParityOdd, models.ParityEven, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.schedules.slotGroup = []*models.Schedule{f.occupying(50, tt.existing)}

			req := saveRequest()
			req.Parity = tt.candidate
			_, err := f.service.Save(context.Background(), req)

			if tt.conflict {
				if !errors.Is(err, apperrors.ErrScheduleConflict) {
					t.Fatalf("expected schedule conflict, got %v", err)
				}
				if len(f.schedules.created) != 0 {
					t.Error("conflicting save must not write")
				}
			} else {
				if err != nil {
					t.Fatalf("expected save to pass, got %v", err)
				}
				if len(f.schedules.created) != 1 {
					t.Error("non-conflicting save must write")
				}
			}
		})
	}
}

// The conflict check always keys on the lesson's own semester: a request
// naming any other semester is rejected outright instead of steering the
// check at a semester where the slot looks empty.
func TestSaveForeignSemesterRejected(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.schedules.slotGroup = []*models.Schedule{f.occupying(50, models.ParityEven)}

	req := saveRequest()
	req.SemesterID = 2
	_, err := f.service.Save(context.Background(), req)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request for mismatched semester, got %v", err)
	}
	if len(f.schedules.created) != 0 {
		t.Error("rejected save must not write")
	}
	if f.tx.calls != 0 {
		t.Error("no transaction must start for a mismatched semester")
	}
}

// Naming the lesson's own semester changes nothing: the occupant is still
// found and the conflict still fires.
func TestSaveMatchingSemesterStillConflicts(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.schedules.slotGroup = []*models.Schedule{f.occupying(50, models.ParityEven)}

	req := saveRequest()
	req.SemesterID = f.semester.ID
	_, err := f.service.Save(context.Background(), req)
	if !errors.Is(err, apperrors.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}
	if len(f.schedules.created) != 0 {
		t.Error("conflicting save must not write")
	}
}

// A schedule whose room is disabled does not block the slot.
func TestSaveIgnoresInactiveOccupant(t *testing.T) {
	t.Parallel()
	f := newFixture()

	occupant := f.occupying(50, models.ParityEven)
	occupant.Room = &models.Room{ID: 10, Disabled: true}
	f.schedules.slotGroup = []*models.Schedule{occupant}

	if _, err := f.service.Save(context.Background(), saveRequest()); err != nil {
		t.Fatalf("inactive occupant must not conflict, got %v", err)
	}
}

func TestSaveUnknownLesson(t *testing.T) {
	t.Parallel()
	f := newFixture()

	req := saveRequest()
	req.LessonID = 99
	_, err := f.service.Save(context.Background(), req)
	if !errors.Is(err, apperrors.ErrLessonNotFound) {
		t.Fatalf("expected lesson not found, got %v", err)
	}
	if f.tx.calls != 0 {
		t.Error("no transaction must start when validation fails")
	}
}

// The schedule being moved does not conflict with itself: the slot
// re-read includes it and the count must exclude it.
func TestUpdateExcludesSelf(t *testing.T) {
	t.Parallel()
	f := newFixture()

	current := f.occupying(7, models.ParityEven)
	f.schedules.byID[7] = current
	f.schedules.slotGroup = []*models.Schedule{current}

	updated, err := f.service.Update(context.Background(), 7, saveRequest())
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(f.schedules.updated) != 1 {
		t.Fatalf("expected 1 update, got %d", len(f.schedules.updated))
	}
	if updated.ID != 7 {
		t.Errorf("updated schedule id = %d, want 7", updated.ID)
	}
}

func TestUpdateConflictWithOther(t *testing.T) {
	t.Parallel()
	f := newFixture()

	current := f.occupying(7, models.ParityOdd)
	other := f.occupying(8, models.ParityEven)
	f.schedules.byID[7] = current
	f.schedules.slotGroup = []*models.Schedule{current, other}

	_, err := f.service.Update(context.Background(), 7, saveRequest())
	if !errors.Is(err, apperrors.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict against schedule 8, got %v", err)
	}
	if len(f.schedules.updated) != 0 {
		t.Error("conflicting update must not write")
	}
}

func TestUpdateUnknownSchedule(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.service.Update(context.Background(), 99, saveRequest())
	if !errors.Is(err, apperrors.ErrScheduleNotFound) {
		t.Fatalf("expected schedule not found, got %v", err)
	}
}

func TestGetInfoGroupConflictHardReject(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.schedules.slotGroup = []*models.Schedule{f.occupying(50, models.ParityWeekly)}

	_, err := f.service.GetInfoForCreatingSchedule(context.Background(), 1, models.Monday, models.ParityEven, 1, 1)
	if !errors.Is(err, apperrors.ErrScheduleConflict) {
		t.Fatalf("expected group conflict, got %v", err)
	}
}

func TestGetInfoTeacherBusyIsAdvisory(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.schedules.slotTeacher = []*models.Schedule{f.occupying(50, models.ParityEven)}

	info, err := f.service.GetInfoForCreatingSchedule(context.Background(), 1, models.Monday, models.ParityEven, 1, 1)
	if err != nil {
		t.Fatalf("teacher conflict must not reject, got %v", err)
	}
	if info.TeacherAvailable {
		t.Error("teacher occupying the slot must be reported unavailable")
	}
}

func TestGetInfoFreeRooms(t *testing.T) {
	t.Parallel()
	f := newFixture()
	// Room 10 is taken on even weeks at the slot.
	f.schedules.slot = []*models.Schedule{f.occupying(50, models.ParityEven)}

	info, err := f.service.GetInfoForCreatingSchedule(context.Background(), 1, models.Monday, models.ParityEven, 1, 1)
	if err != nil {
		t.Fatalf("GetInfoForCreatingSchedule returned error: %v", err)
	}
	if len(info.Rooms) != 1 || info.Rooms[0].ID != 11 {
		t.Errorf("expected only room 11 free, got %v", info.Rooms)
	}
	if !info.TeacherAvailable {
		t.Error("teacher must be available")
	}

	// Opposite parity leaves both rooms free.
	info, err = f.service.GetInfoForCreatingSchedule(context.Background(), 1, models.Monday, models.ParityOdd, 1, 1)
	if err != nil {
		t.Fatalf("GetInfoForCreatingSchedule returned error: %v", err)
	}
	if len(info.Rooms) != 2 {
		t.Errorf("expected both rooms free on odd weeks, got %v", info.Rooms)
	}
}

func TestGetInfoWishes(t *testing.T) {
	t.Parallel()
	f := newFixture()
	wishes := f.service.stores.Wishes.(*fakeWishStore)
	wishes.wishes = []*models.TeacherWish{
		{TeacherID: 1, DayOfWeek: models.Monday, Parity: models.ParityEven, PeriodID: 1, Preference: models.WishBad},
	}

	info, err := f.service.GetInfoForCreatingSchedule(context.Background(), 1, models.Monday, models.ParityEven, 1, 1)
	if err != nil {
		t.Fatalf("GetInfoForCreatingSchedule returned error: %v", err)
	}
	if info.ClassSuitsToTeacher {
		t.Error("a BAD wish on the slot must mark it unsuitable")
	}
}

func TestScheduleByDateRangeForTeacherUnknownTeacher(t *testing.T) {
	t.Parallel()
	f := newFixture()

	from := time.Date(2021, 9, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 9, 20, 0, 0, 0, 0, time.UTC)
	_, err := f.service.ScheduleByDateRangeForTeacher(context.Background(), from, to, 99)
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Fatalf("expected teacher not found, got %v", err)
	}
}
