package models

// Lesson is a teaching assignment: a teacher giving a subject to a group
// within a semester. Schedules place lessons into weekly time slots.
type Lesson struct {
	ID             int64      `json:"id"`
	Hours          int        `json:"hours"`
	LessonType     LessonType `json:"lessonType"`
	TeacherForSite string     `json:"teacherForSite"`
	SubjectForSite string     `json:"subjectForSite"`
	Grouped        bool       `json:"grouped"`

	Teacher  *Teacher  `json:"teacher,omitempty"`
	Subject  *Subject  `json:"subject,omitempty"`
	Group    *Group    `json:"group,omitempty"`
	Semester *Semester `json:"semester,omitempty"`
}
