package document

import (
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

const (
	maxNameLength = 100
	maxTypeLength = 50
)

// DocumentInput is one metadata record in a create request. Category defaults
// per document kind when omitted.
type DocumentInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Category string `json:"category,omitempty"`
}

func (d DocumentInput) validate(prefix string, errs validator.ValidationErrors) validator.ValidationErrors {
	if validator.IsEmpty(d.Name) {
		errs = append(errs, validator.ValidationError{Field: prefix + "name", Message: "is required"})
	}
	if len(d.Name) > maxNameLength {
		errs = append(errs, validator.ValidationError{Field: prefix + "name", Message: "must be at most 100 characters"})
	}
	if validator.IsEmpty(d.Type) {
		errs = append(errs, validator.ValidationError{Field: prefix + "type", Message: "is required"})
	}
	if len(d.Type) > maxTypeLength {
		errs = append(errs, validator.ValidationError{Field: prefix + "type", Message: "must be at most 50 characters"})
	}
	if validator.IsEmpty(d.URL) {
		errs = append(errs, validator.ValidationError{Field: prefix + "url", Message: "is required"})
	}
	return errs
}

type CreateEmployeeDocumentsRequest struct {
	EmployeeID string          `json:"-"`
	Documents  []DocumentInput `json:"documents"`
}

func (r *CreateEmployeeDocumentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if len(r.Documents) == 0 {
		errs = append(errs, validator.ValidationError{Field: "documents", Message: "must contain at least one document"})
	}
	for i, d := range r.Documents {
		prefix := "documents[" + validator.Itoa(i) + "]."
		errs = d.validate(prefix, errs)
		if d.Category != "" && !EmployeeDocumentCategory(d.Category).Valid() {
			errs = append(errs, validator.ValidationError{Field: prefix + "category", Message: "must be one of official documents, payslips, contracts, certificates, ids"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeDocumentRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	URL      *string `json:"url,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r *UpdateEmployeeDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
		}
		if len(*r.Name) > maxNameLength {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at most 100 characters"})
		}
	}
	if r.Type != nil {
		if validator.IsEmpty(*r.Type) {
			errs = append(errs, validator.ValidationError{Field: "type", Message: "must not be empty"})
		}
		if len(*r.Type) > maxTypeLength {
			errs = append(errs, validator.ValidationError{Field: "type", Message: "must be at most 50 characters"})
		}
	}
	if r.URL != nil && validator.IsEmpty(*r.URL) {
		errs = append(errs, validator.ValidationError{Field: "url", Message: "must not be empty"})
	}
	if r.Category != nil && !EmployeeDocumentCategory(*r.Category).Valid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be one of official documents, payslips, contracts, certificates, ids"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTaskDocumentsRequest struct {
	TaskID    string          `json:"-"`
	Documents []DocumentInput `json:"documents"`
}

func (r *CreateTaskDocumentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "task_id", Message: "must be a valid UUID"})
	}
	if len(r.Documents) == 0 {
		errs = append(errs, validator.ValidationError{Field: "documents", Message: "must contain at least one document"})
	}
	for i, d := range r.Documents {
		prefix := "documents[" + validator.Itoa(i) + "]."
		errs = d.validate(prefix, errs)
		// Task attachments have no default; the kind must be stated.
		if !TaskDocumentCategory(d.Category).Valid() {
			errs = append(errs, validator.ValidationError{Field: prefix + "category", Message: "must be assignment or completion"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskDocumentRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	URL      *string `json:"url,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r *UpdateTaskDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
		}
		if len(*r.Name) > maxNameLength {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at most 100 characters"})
		}
	}
	if r.Type != nil {
		if validator.IsEmpty(*r.Type) {
			errs = append(errs, validator.ValidationError{Field: "type", Message: "must not be empty"})
		}
		if len(*r.Type) > maxTypeLength {
			errs = append(errs, validator.ValidationError{Field: "type", Message: "must be at most 50 characters"})
		}
	}
	if r.URL != nil && validator.IsEmpty(*r.URL) {
		errs = append(errs, validator.ValidationError{Field: "url", Message: "must not be empty"})
	}
	if r.Category != nil && !TaskDocumentCategory(*r.Category).Valid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be assignment or completion"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeDocumentResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	URL        string  `json:"url"`
	Category   string  `json:"category"`
	CreatedBy  *string `json:"created_by,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToEmployeeDocumentResponse(d EmployeeDocument) EmployeeDocumentResponse {
	return EmployeeDocumentResponse{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Type:       d.Type,
		URL:        d.URL,
		Category:   string(d.Category),
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type TaskDocumentResponse struct {
	ID        string  `json:"id"`
	TaskID    string  `json:"task_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	URL       string  `json:"url"`
	Category  string  `json:"category"`
	CreatedBy *string `json:"created_by,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func ToTaskDocumentResponse(d TaskDocument) TaskDocumentResponse {
	return TaskDocumentResponse{
		ID:        d.ID,
		TaskID:    d.TaskID,
		Name:      d.Name,
		Type:      d.Type,
		URL:       d.URL,
		Category:  string(d.Category),
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
