package learning

import (
	"context"
	"fmt"

	"github.com/madison-jay/edike-backend/internal/domain/learning"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type Service struct {
	db           *database.DB
	moduleRepo   learning.ModuleRepository
	lessonRepo   learning.LessonRepository
	questionRepo learning.QuestionRepository
}

func NewService(
	db *database.DB,
	moduleRepo learning.ModuleRepository,
	lessonRepo learning.LessonRepository,
	questionRepo learning.QuestionRepository,
) *Service {
	return &Service{db: db, moduleRepo: moduleRepo, lessonRepo: lessonRepo, questionRepo: questionRepo}
}

func (s *Service) CreateModule(ctx context.Context, req learning.CreateModuleRequest) (learning.ModuleResponse, error) {
	if err := req.Validate(); err != nil {
		return learning.ModuleResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return learning.ModuleResponse{}, err
	}

	created, err := s.moduleRepo.Create(ctx, learning.Module{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   identity.EmployeeID,
	})
	if err != nil {
		return learning.ModuleResponse{}, fmt.Errorf("create learning module: %w", err)
	}
	return learning.ToModuleResponse(created), nil
}

func (s *Service) GetModule(ctx context.Context, id string) (learning.ModuleResponse, error) {
	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		return learning.ModuleResponse{}, err
	}
	return learning.ToModuleResponse(module), nil
}

func (s *Service) ListModules(ctx context.Context) ([]learning.ModuleResponse, error) {
	modules, err := s.moduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learning modules: %w", err)
	}

	responses := make([]learning.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		responses = append(responses, learning.ToModuleResponse(m))
	}
	return responses, nil
}

func (s *Service) UpdateModule(ctx context.Context, req learning.UpdateModuleRequest) (learning.ModuleResponse, error) {
	if err := req.Validate(); err != nil {
		return learning.ModuleResponse{}, err
	}
	if err := s.moduleRepo.Update(ctx, req); err != nil {
		return learning.ModuleResponse{}, err
	}
	return s.GetModule(ctx, req.ID)
}

// DeleteModule removes the module; lessons and questions cascade in the
// schema.
func (s *Service) DeleteModule(ctx context.Context, id string) error {
	return s.moduleRepo.Delete(ctx, id)
}

func (s *Service) CreateLesson(ctx context.Context, req learning.CreateLessonRequest) (learning.LessonResponse, error) {
	if err := req.Validate(); err != nil {
		return learning.LessonResponse{}, err
	}

	if _, err := s.moduleRepo.GetByID(ctx, req.ModuleID); err != nil {
		return learning.LessonResponse{}, err
	}

	created, err := s.lessonRepo.Create(ctx, learning.Lesson{
		ModuleID: req.ModuleID,
		Title:    req.Title,
		Content:  req.Content,
		Position: req.Position,
	})
	if err != nil {
		return learning.LessonResponse{}, fmt.Errorf("create lesson: %w", err)
	}
	return learning.ToLessonResponse(created), nil
}

func (s *Service) GetLesson(ctx context.Context, id string) (learning.LessonResponse, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return learning.LessonResponse{}, err
	}
	return learning.ToLessonResponse(lesson), nil
}

func (s *Service) ListLessons(ctx context.Context, moduleID string) ([]learning.LessonResponse, error) {
	if _, err := s.moduleRepo.GetByID(ctx, moduleID); err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.ListByModuleID(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	responses := make([]learning.LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		responses = append(responses, learning.ToLessonResponse(l))
	}
	return responses, nil
}

func (s *Service) UpdateLesson(ctx context.Context, req learning.UpdateLessonRequest) (learning.LessonResponse, error) {
	if err := req.Validate(); err != nil {
		return learning.LessonResponse{}, err
	}
	if err := s.lessonRepo.Update(ctx, req); err != nil {
		return learning.LessonResponse{}, err
	}
	return s.GetLesson(ctx, req.ID)
}

func (s *Service) DeleteLesson(ctx context.Context, id string) error {
	return s.lessonRepo.Delete(ctx, id)
}

func (s *Service) CreateQuestion(ctx context.Context, req learning.CreateQuestionRequest) (learning.QuestionResponse, error) {
	if err := req.Validate(); err != nil {
		return learning.QuestionResponse{}, err
	}

	if _, err := s.lessonRepo.GetByID(ctx, req.LessonID); err != nil {
		return learning.QuestionResponse{}, err
	}

	created, err := s.questionRepo.Create(ctx, learning.Question{
		LessonID:    req.LessonID,
		Prompt:      req.Prompt,
		Choices:     req.Choices,
		AnswerIndex: req.AnswerIndex,
	})
	if err != nil {
		return learning.QuestionResponse{}, fmt.Errorf("create question: %w", err)
	}
	return learning.ToQuestionResponse(created), nil
}

func (s *Service) GetQuestion(ctx context.Context, id string) (learning.QuestionResponse, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return learning.QuestionResponse{}, err
	}
	return learning.ToQuestionResponse(question), nil
}

func (s *Service) ListQuestions(ctx context.Context, lessonID string) ([]learning.QuestionResponse, error) {
	if _, err := s.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	responses := make([]learning.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, learning.ToQuestionResponse(q))
	}
	return responses, nil
}

func (s *Service) UpdateQuestion(ctx context.Context, req learning.UpdateQuestionRequest) (learning.QuestionResponse, error) {
	if err := req.Validate(); err != nil {
		return learning.QuestionResponse{}, err
	}
	if err := s.questionRepo.Update(ctx, req); err != nil {
		return learning.QuestionResponse{}, err
	}
	return s.GetQuestion(ctx, req.ID)
}

func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	return s.questionRepo.Delete(ctx, id)
}
