package models

// Teacher is a member of the teaching staff.
type Teacher struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic"`
	Position   string `json:"position"`
	Disabled   bool   `json:"disable"`
}

// Subject is a taught discipline.
type Subject struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Disabled bool   `json:"disable"`
}

// Group is a student group attending lessons together.
type Group struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Disabled bool   `json:"disable"`
}

// Room is a physical classroom.
type Room struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	SortOrder int    `json:"sortOrder"`
	Disabled  bool   `json:"disable"`
}
