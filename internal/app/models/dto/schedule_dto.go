package dto

import (
	"github.com/vmelnyk/timetable/internal/app/models"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// PeriodDTO mirrors a period in responses.
type PeriodDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime" example:"08:20"`
	EndTime   string `json:"endTime" example:"09:40"`
}

// RoomDTO mirrors a room in responses.
type RoomDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// GroupDTO mirrors a student group in responses.
type GroupDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// TeacherDTO mirrors a teacher in responses.
type TeacherDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic"`
	Position   string `json:"position"`
}

// SemesterDTO mirrors a semester in responses.
type SemesterDTO struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	StartDay    string `json:"startDay" example:"2021-09-06"`
	EndDay      string `json:"endDay" example:"2021-12-24"`
}

// CreateScheduleRequest carries a proposed weekly slot placement.
type CreateScheduleRequest struct {
	DayOfWeek models.DayOfWeek `json:"dayOfWeek" binding:"required,dayofweek"`
	Parity    models.Parity    `json:"evenOdd" binding:"required,parity"`
	PeriodID  int64            `json:"periodId" binding:"required,gt=0"`
	RoomID    int64            `json:"roomId" binding:"required,gt=0"`
	LessonID  int64            `json:"lessonId" binding:"required,gt=0"`
	// SemesterID is optional and informational only: the schedule is always
	// placed in its lesson's semester, and a non-zero value naming any other
	// semester is rejected.
	SemesterID int64 `json:"semesterId" binding:"omitempty,gt=0"`
}

// CreateScheduleInfoDTO reports what the client needs to finish placing a
// lesson into a slot: teacher availability is advisory, rooms lists the
// rooms still free at that slot.
type CreateScheduleInfoDTO struct {
	TeacherAvailable    bool      `json:"teacherAvailable"`
	Rooms               []RoomDTO `json:"rooms"`
	ClassSuitsToTeacher bool      `json:"classSuitsToTeacher"`
}

// LessonInScheduleDTO is one placed lesson inside a week view.
type LessonInScheduleDTO struct {
	ScheduleID     int64             `json:"scheduleId"`
	LessonID       int64             `json:"lessonId"`
	SubjectForSite string            `json:"subjectForSite"`
	TeacherForSite string            `json:"teacherForSite"`
	LessonType     models.LessonType `json:"lessonType"`
	Parity         models.Parity     `json:"evenOdd"`
	Grouped        bool              `json:"grouped"`
	GroupName      string            `json:"groupName,omitempty"`
	Room           RoomDTO           `json:"room"`
}

// LessonsInWeekDTO splits a group's slot into its even and odd lessons. A
// WEEKLY lesson shows up in both halves.
type LessonsInWeekDTO struct {
	Even *LessonInScheduleDTO `json:"even,omitempty"`
	Odd  *LessonInScheduleDTO `json:"odd,omitempty"`
}

// ClassInScheduleDTO is one period of a group's typical week.
type ClassInScheduleDTO struct {
	Period PeriodDTO        `json:"class"`
	Weeks  LessonsInWeekDTO `json:"weeks"`
}

// DayWithClassesDTO is one weekday of a group's typical week.
type DayWithClassesDTO struct {
	Day     models.DayOfWeek     `json:"day"`
	Classes []ClassInScheduleDTO `json:"classes"`
}

// ScheduleForGroupDTO is the typical-week view of one group.
type ScheduleForGroupDTO struct {
	Group GroupDTO            `json:"group"`
	Days  []DayWithClassesDTO `json:"days"`
}

// ScheduleFullDTO is the typical-week view of every group in a semester.
type ScheduleFullDTO struct {
	Semester SemesterDTO           `json:"semester"`
	Schedule []ScheduleForGroupDTO `json:"schedule"`
}

// ClassForTeacherDTO is one period of a teacher's half-week with every
// lesson taught then (a teacher may serve several groups in one slot).
type ClassForTeacherDTO struct {
	Period  PeriodDTO             `json:"class"`
	Lessons []LessonInScheduleDTO `json:"lessons"`
}

// HalfWeekForTeacherDTO lists the periods of one half (even or odd weeks).
type HalfWeekForTeacherDTO struct {
	Periods []ClassForTeacherDTO `json:"periods"`
}

// DayWithClassesForTeacherDTO is one weekday of a teacher's typical week.
type DayWithClassesForTeacherDTO struct {
	Day      models.DayOfWeek      `json:"day"`
	EvenWeek HalfWeekForTeacherDTO `json:"evenWeek"`
	OddWeek  HalfWeekForTeacherDTO `json:"oddWeek"`
}

// ScheduleForTeacherDTO is the typical-week view of one teacher.
type ScheduleForTeacherDTO struct {
	Semester SemesterDTO                   `json:"semester"`
	Teacher  TeacherDTO                    `json:"teacher"`
	Days     []DayWithClassesForTeacherDTO `json:"days"`
}

// RoomClassDTO is one period of a room's day with its even and odd
// occupants.
type RoomClassDTO struct {
	Period PeriodDTO             `json:"class"`
	Even   []LessonInScheduleDTO `json:"even"`
	Odd    []LessonInScheduleDTO `json:"odd"`
}

// DayWithClassesForRoomDTO is one weekday of a room's typical week.
type DayWithClassesForRoomDTO struct {
	Day     models.DayOfWeek `json:"day"`
	Classes []RoomClassDTO   `json:"classes"`
}

// ScheduleForRoomDTO is the typical-week view of one room.
type ScheduleForRoomDTO struct {
	RoomID   int64                      `json:"roomId"`
	RoomName string                     `json:"roomName"`
	RoomType string                     `json:"roomType"`
	Days     []DayWithClassesForRoomDTO `json:"schedules"`
}

// ScheduleDTO mirrors one weekly slot placement in responses.
type ScheduleDTO struct {
	ID        int64               `json:"id"`
	DayOfWeek models.DayOfWeek    `json:"dayOfWeek"`
	Parity    models.Parity       `json:"evenOdd"`
	Period    PeriodDTO           `json:"class"`
	Room      RoomDTO             `json:"room"`
	Lesson    LessonInScheduleDTO `json:"lesson"`
}

// NewScheduleDTO converts a schedule model.
func NewScheduleDTO(s *models.Schedule) ScheduleDTO {
	out := ScheduleDTO{
		ID:        s.ID,
		DayOfWeek: s.DayOfWeek,
		Parity:    s.Parity,
		Lesson:    NewLessonInScheduleDTO(s),
	}
	if s.Period != nil {
		out.Period = NewPeriodDTO(s.Period)
	}
	if s.Room != nil {
		out.Room = NewRoomDTO(s.Room)
	}
	return out
}

// NewScheduleDTOs converts a slice of schedule models.
func NewScheduleDTOs(schedules []*models.Schedule) []ScheduleDTO {
	out := make([]ScheduleDTO, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, NewScheduleDTO(s))
	}
	return out
}

// NewPeriodDTO converts a period model.
func NewPeriodDTO(p *models.Period) PeriodDTO {
	return PeriodDTO{ID: p.ID, Name: p.Name, StartTime: p.StartTime, EndTime: p.EndTime}
}

// NewRoomDTO converts a room model.
func NewRoomDTO(r *models.Room) RoomDTO {
	return RoomDTO{ID: r.ID, Name: r.Name, Type: r.Type}
}

// NewGroupDTO converts a group model.
func NewGroupDTO(g *models.Group) GroupDTO {
	return GroupDTO{ID: g.ID, Title: g.Title}
}

// NewTeacherDTO converts a teacher model.
func NewTeacherDTO(t *models.Teacher) TeacherDTO {
	return TeacherDTO{ID: t.ID, Name: t.Name, Surname: t.Surname, Patronymic: t.Patronymic, Position: t.Position}
}

// NewSemesterDTO converts a semester model.
func NewSemesterDTO(s *models.Semester) SemesterDTO {
	return SemesterDTO{
		ID:          s.ID,
		Description: s.Description,
		Year:        s.Year,
		StartDay:    s.StartDay.Format(DateFormat),
		EndDay:      s.EndDay.Format(DateFormat),
	}
}

// NewLessonInScheduleDTO converts one placed schedule into its week-view
// lesson shape.
func NewLessonInScheduleDTO(s *models.Schedule) LessonInScheduleDTO {
	out := LessonInScheduleDTO{
		ScheduleID: s.ID,
		Parity:     s.Parity,
	}
	if s.Room != nil {
		out.Room = NewRoomDTO(s.Room)
	}
	if l := s.Lesson; l != nil {
		out.LessonID = l.ID
		out.SubjectForSite = l.SubjectForSite
		out.TeacherForSite = l.TeacherForSite
		out.LessonType = l.LessonType
		out.Grouped = l.Grouped
		if l.Group != nil {
			out.GroupName = l.Group.Title
		}
	}
	return out
}
