package task

import (
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	AssigneeID  string  `json:"assignee_id"`
	AssignedBy  string  `json:"-"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    string  `json:"priority"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if !validator.IsValidUUID(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{Field: "assignee_id", Message: "must be a valid UUID"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if !Priority(r.Priority).Valid() {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be one of low, medium, high"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}
	if r.AssigneeID != nil && !validator.IsValidUUID(*r.AssigneeID) {
		errs = append(errs, validator.ValidationError{Field: "assignee_id", Message: "must be a valid UUID"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of todo, in_progress, done, cancelled"})
	}
	if r.Priority != nil && !Priority(*r.Priority).Valid() {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be one of low, medium, high"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	AssigneeID   string  `json:"assignee_id"`
	AssigneeName *string `json:"assignee_name,omitempty"`
	AssignedBy   string  `json:"assigned_by"`
	DueDate      *string `json:"due_date,omitempty"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		AssignedBy:   t.AssignedBy,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

func ToResponses(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToResponse(t))
	}
	return responses
}
