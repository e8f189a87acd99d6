package dto

import (
	"github.com/vmelnyk/timetable/internal/app/models"
	"github.com/vmelnyk/timetable/internal/timetable"
)

// TemporaryScheduleDTO mirrors a one-date override in responses.
type TemporaryScheduleDTO struct {
	ID             int64              `json:"id"`
	Date           string             `json:"date" example:"2021-09-20"`
	ScheduleID     *int64             `json:"scheduleId,omitempty"`
	LessonType     *models.LessonType `json:"lessonType,omitempty"`
	Teacher        *TeacherDTO        `json:"teacher,omitempty"`
	Room           *RoomDTO           `json:"room,omitempty"`
	Period         *PeriodDTO         `json:"class,omitempty"`
	TeacherForSite string             `json:"teacherForSite,omitempty"`
	SubjectForSite string             `json:"subjectForSite,omitempty"`
	LinkToMeeting  string             `json:"linkToMeeting,omitempty"`
	Grouped        bool               `json:"grouped"`
	Vacation       bool               `json:"vacation"`
}

// OccurrenceDTO is one schedule landing on one date, with its override if
// one applies.
type OccurrenceDTO struct {
	Schedule LessonInScheduleDTO   `json:"schedule"`
	Override *TemporaryScheduleDTO `json:"temporarySchedule,omitempty"`
}

// AgendaSlotDTO is one period of a resolved date.
type AgendaSlotDTO struct {
	Period      PeriodDTO       `json:"class"`
	Occurrences []OccurrenceDTO `json:"lessons"`
}

// DailyAgendaDTO is the resolved timetable of one calendar date.
type DailyAgendaDTO struct {
	Date  string          `json:"date" example:"2021-09-06"`
	Slots []AgendaSlotDTO `json:"schedule"`
}

// NewTemporaryScheduleDTO converts an override model.
func NewTemporaryScheduleDTO(ts *models.TemporarySchedule) *TemporaryScheduleDTO {
	if ts == nil {
		return nil
	}
	out := &TemporaryScheduleDTO{
		ID:             ts.ID,
		Date:           ts.Date.Format(DateFormat),
		ScheduleID:     ts.ScheduleID,
		LessonType:     ts.LessonType,
		TeacherForSite: ts.TeacherForSite,
		SubjectForSite: ts.SubjectForSite,
		LinkToMeeting:  ts.LinkToMeeting,
		Grouped:        ts.Grouped,
		Vacation:       ts.Vacation,
	}
	if ts.Teacher != nil {
		t := NewTeacherDTO(ts.Teacher)
		out.Teacher = &t
	}
	if ts.Room != nil {
		r := NewRoomDTO(ts.Room)
		out.Room = &r
	}
	if ts.Period != nil {
		p := NewPeriodDTO(ts.Period)
		out.Period = &p
	}
	return out
}

// NewDailyAgendaDTOs converts resolved agendas into their wire shape.
func NewDailyAgendaDTOs(agendas []timetable.DailyAgenda) []DailyAgendaDTO {
	out := make([]DailyAgendaDTO, 0, len(agendas))
	for _, day := range agendas {
		dayDTO := DailyAgendaDTO{Date: day.Date.Format(DateFormat)}
		for _, slot := range day.Slots {
			slotDTO := AgendaSlotDTO{Period: NewPeriodDTO(slot.Period)}
			for _, occ := range slot.Occurrences {
				slotDTO.Occurrences = append(slotDTO.Occurrences, OccurrenceDTO{
					Schedule: NewLessonInScheduleDTO(occ.Schedule),
					Override: NewTemporaryScheduleDTO(occ.Override),
				})
			}
			dayDTO.Slots = append(dayDTO.Slots, slotDTO)
		}
		out = append(out, dayDTO)
	}
	return out
}
