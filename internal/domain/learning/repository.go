package learning

import "context"

// ModuleRepository - interface for the learning_modules table
type ModuleRepository interface {
	Create(ctx context.Context, module Module) (Module, error)
	GetByID(ctx context.Context, id string) (Module, error)
	List(ctx context.Context) ([]Module, error)
	Update(ctx context.Context, req UpdateModuleRequest) error
	Delete(ctx context.Context, id string) error
}

// LessonRepository - interface for the lessons table
type LessonRepository interface {
	Create(ctx context.Context, lesson Lesson) (Lesson, error)
	GetByID(ctx context.Context, id string) (Lesson, error)
	ListByModuleID(ctx context.Context, moduleID string) ([]Lesson, error)
	Update(ctx context.Context, req UpdateLessonRequest) error
	Delete(ctx context.Context, id string) error
}

// QuestionRepository - interface for the questions table
type QuestionRepository interface {
	Create(ctx context.Context, question Question) (Question, error)
	GetByID(ctx context.Context, id string) (Question, error)
	ListByLessonID(ctx context.Context, lessonID string) ([]Question, error)
	Update(ctx context.Context, req UpdateQuestionRequest) error
	Delete(ctx context.Context, id string) error
}
