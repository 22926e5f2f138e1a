package leave

import (
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"-"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of vacation, sick, personal, unpaid"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequestRequest struct {
	RequestID string `json:"-"`
	Decision  string `json:"decision"` // approved, rejected or cancelled
}

func (r *DecideLeaveRequestRequest) Validate() error {
	switch LeaveStatus(r.Decision) {
	case LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCancelled:
		return nil
	}
	return validator.ValidationErrors{{Field: "decision", Message: "must be approved, rejected or cancelled"}}
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	var approvedAt *string
	if r.ApprovedAt != nil {
		str := r.ApprovedAt.Format("2006-01-02T15:04:05Z07:00")
		approvedAt = &str
	}

	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		LeaveType:    string(r.LeaveType),
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Days:         r.Days(),
		Reason:       r.Reason,
		Status:       string(r.Status),
		ApprovedBy:   r.ApprovedBy,
		ApprovedAt:   approvedAt,
	}
}

func ToResponses(requests []LeaveRequest) []LeaveRequestResponse {
	result := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, ToResponse(r))
	}
	return result
}
