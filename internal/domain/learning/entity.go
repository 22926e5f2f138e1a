package learning

import "time"

// Module is a course grouping lessons in display order.
type Module struct {
	ID          string
	Title       string
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LessonCount int
}

type Lesson struct {
	ID        string
	ModuleID  string
	Title     string
	Content   string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Question - a multiple-choice check attached to a lesson. AnswerIndex
// points into Choices.
type Question struct {
	ID          string
	LessonID    string
	Prompt      string
	Choices     []string
	AnswerIndex int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
