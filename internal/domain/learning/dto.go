package learning

import (
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateModuleRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	CreatedBy   string  `json:"-"`
}

func (r *CreateModuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateModuleRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateModuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLessonRequest struct {
	ModuleID string `json:"module_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

func (r *CreateLessonRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ModuleID) {
		errs = append(errs, validator.ValidationError{Field: "module_id", Message: "must be a valid UUID"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}
	if r.Position < 0 {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLessonRequest struct {
	ID       string  `json:"-"`
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Position *int    `json:"position,omitempty"`
}

func (r *UpdateLessonRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}
	if r.Content != nil && validator.IsEmpty(*r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "must not be empty"})
	}
	if r.Position != nil && *r.Position < 0 {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateQuestionRequest struct {
	LessonID    string   `json:"lesson_id"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
}

func (r *CreateQuestionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.LessonID) {
		errs = append(errs, validator.ValidationError{Field: "lesson_id", Message: "must be a valid UUID"})
	}
	if validator.IsEmpty(r.Prompt) {
		errs = append(errs, validator.ValidationError{Field: "prompt", Message: "is required"})
	}
	if len(r.Choices) < 2 {
		errs = append(errs, validator.ValidationError{Field: "choices", Message: "needs at least 2 choices"})
	}
	if r.AnswerIndex < 0 || r.AnswerIndex >= len(r.Choices) {
		errs = append(errs, validator.ValidationError{Field: "answer_index", Message: "must index into choices"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateQuestionRequest struct {
	ID          string   `json:"-"`
	Prompt      *string  `json:"prompt,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	AnswerIndex *int     `json:"answer_index,omitempty"`
}

func (r *UpdateQuestionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Prompt != nil && validator.IsEmpty(*r.Prompt) {
		errs = append(errs, validator.ValidationError{Field: "prompt", Message: "must not be empty"})
	}
	if r.Choices != nil && len(r.Choices) < 2 {
		errs = append(errs, validator.ValidationError{Field: "choices", Message: "needs at least 2 choices"})
	}
	if r.AnswerIndex != nil && r.Choices != nil && (*r.AnswerIndex < 0 || *r.AnswerIndex >= len(r.Choices)) {
		errs = append(errs, validator.ValidationError{Field: "answer_index", Message: "must index into choices"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ModuleResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	CreatedBy   string  `json:"created_by"`
	LessonCount int     `json:"lesson_count"`
}

func ToModuleResponse(m Module) ModuleResponse {
	return ModuleResponse{ID: m.ID, Title: m.Title, Description: m.Description, CreatedBy: m.CreatedBy, LessonCount: m.LessonCount}
}

type LessonResponse struct {
	ID       string `json:"id"`
	ModuleID string `json:"module_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

func ToLessonResponse(l Lesson) LessonResponse {
	return LessonResponse{ID: l.ID, ModuleID: l.ModuleID, Title: l.Title, Content: l.Content, Position: l.Position}
}

type QuestionResponse struct {
	ID          string   `json:"id"`
	LessonID    string   `json:"lesson_id"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
}

func ToQuestionResponse(q Question) QuestionResponse {
	return QuestionResponse{ID: q.ID, LessonID: q.LessonID, Prompt: q.Prompt, Choices: q.Choices, AnswerIndex: q.AnswerIndex}
}
