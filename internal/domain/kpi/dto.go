package kpi

import (
	"encoding/json"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateTemplateRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Weight      float64         `json:"weight"`
	TargetType  string          `json:"target_type"`
	TargetValue json.RawMessage `json:"target_value"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Weight <= 0 || r.Weight > 1 {
		errs = append(errs, validator.ValidationError{Field: "weight", Message: "must be in (0, 1]"})
	}
	if !TargetType(r.TargetType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "target_type", Message: "must be one of numeric, boolean, text, percentage, range"})
	} else if err := ValidateTargetValue(TargetType(r.TargetType), r.TargetValue); err != nil {
		errs = append(errs, validator.ValidationError{Field: "target_value", Message: "does not match target_type"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTemplateRequest struct {
	ID          string          `json:"-"`
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Weight      *float64        `json:"weight,omitempty"`
	TargetType  *string         `json:"target_type,omitempty"`
	TargetValue json.RawMessage `json:"target_value,omitempty"`
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Weight != nil && (*r.Weight <= 0 || *r.Weight > 1) {
		errs = append(errs, validator.ValidationError{Field: "weight", Message: "must be in (0, 1]"})
	}
	if r.TargetType != nil {
		if !TargetType(*r.TargetType).Valid() {
			errs = append(errs, validator.ValidationError{Field: "target_type", Message: "must be one of numeric, boolean, text, percentage, range"})
		} else if len(r.TargetValue) == 0 {
			errs = append(errs, validator.ValidationError{Field: "target_value", Message: "is required when target_type changes"})
		} else if err := ValidateTargetValue(TargetType(*r.TargetType), r.TargetValue); err != nil {
			errs = append(errs, validator.ValidationError{Field: "target_value", Message: "does not match target_type"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAssignmentRequest struct {
	TemplateID  string `json:"template_id"`
	EmployeeID  string `json:"employee_id"`
	AssignedBy  string `json:"-"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.TemplateID) {
		errs = append(errs, validator.ValidationError{Field: "template_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitAssignmentRequest carries the employee's result for review.
type SubmitAssignmentRequest struct {
	ID             string          `json:"-"`
	SubmittedValue json.RawMessage `json:"submitted_value"`
	EvidenceURL    *string         `json:"evidence_url,omitempty"`
}

func (r *SubmitAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.SubmittedValue) == 0 {
		errs = append(errs, validator.ValidationError{Field: "submitted_value", Message: "is required"})
	}
	if r.EvidenceURL != nil && !validator.IsValidHTTPSURL(*r.EvidenceURL) {
		errs = append(errs, validator.ValidationError{Field: "evidence_url", Message: "must be an https URL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewAssignmentRequest struct {
	ID       string  `json:"-"`
	Decision string  `json:"decision"` // approved or rejected
	Note     *string `json:"note,omitempty"`
}

func (r *ReviewAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Decision != string(StatusApproved) && r.Decision != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Weight      float64         `json:"weight"`
	TargetType  string          `json:"target_type"`
	TargetValue json.RawMessage `json:"target_value"`
}

func ToTemplateResponse(t Template) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Weight:      t.Weight,
		TargetType:  string(t.TargetType),
		TargetValue: t.TargetValue,
	}
}

type AssignmentResponse struct {
	ID             string          `json:"id"`
	TemplateID     string          `json:"template_id"`
	TemplateName   *string         `json:"template_name,omitempty"`
	EmployeeID     string          `json:"employee_id"`
	AssignedBy     string          `json:"assigned_by"`
	PeriodStart    string          `json:"period_start"`
	PeriodEnd      string          `json:"period_end"`
	Status         string          `json:"status"`
	SubmittedValue json.RawMessage `json:"submitted_value,omitempty"`
	EvidenceURL    *string         `json:"evidence_url,omitempty"`
	ReviewedBy     *string         `json:"reviewed_by,omitempty"`
	ReviewNote     *string         `json:"review_note,omitempty"`
	Score          *float64        `json:"score,omitempty"`
}

func ToAssignmentResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:             a.ID,
		TemplateID:     a.TemplateID,
		TemplateName:   a.TemplateName,
		EmployeeID:     a.EmployeeID,
		AssignedBy:     a.AssignedBy,
		PeriodStart:    a.PeriodStart.Format("2006-01-02"),
		PeriodEnd:      a.PeriodEnd.Format("2006-01-02"),
		Status:         string(a.Status),
		SubmittedValue: a.SubmittedValue,
		EvidenceURL:    a.EvidenceURL,
		ReviewedBy:     a.ReviewedBy,
		ReviewNote:     a.ReviewNote,
	}
	if a.Status == StatusApproved && a.TargetType != nil && a.TemplateWeight != nil {
		if achievement, err := Achievement(*a.TargetType, a.TargetValue, a.SubmittedValue); err == nil {
			score := WeightedScore(*a.TemplateWeight, achievement)
			resp.Score = &score
		}
	}
	return resp
}

func ToAssignmentResponses(assignments []Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, ToAssignmentResponse(a))
	}
	return responses
}
