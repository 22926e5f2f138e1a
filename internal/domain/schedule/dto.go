package schedule

import (
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateShiftTypeRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *CreateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidClock(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if _, ok := validator.IsValidClock(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftTypeRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

func (r *UpdateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidClock(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidClock(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateShiftScheduleRequest struct {
	EmployeeID  string `json:"employee_id"`
	ShiftTypeID string `json:"shift_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *CreateShiftScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.ShiftTypeID) {
		errs = append(errs, validator.ValidationError{Field: "shift_type_id", Message: "must be a valid UUID"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftScheduleRequest struct {
	ID          string  `json:"-"`
	ShiftTypeID *string `json:"shift_type_id,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

func (r *UpdateShiftScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftTypeID != nil && !validator.IsValidUUID(*r.ShiftTypeID) {
		errs = append(errs, validator.ValidationError{Field: "shift_type_id", Message: "must be a valid UUID"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftTypeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func ToShiftTypeResponse(t ShiftType) ShiftTypeResponse {
	return ShiftTypeResponse{ID: t.ID, Name: t.Name, StartTime: t.StartTime, EndTime: t.EndTime}
}

type ShiftScheduleResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	ShiftTypeID string  `json:"shift_type_id"`
	ShiftName   *string `json:"shift_name,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

func ToShiftScheduleResponse(s ShiftSchedule) ShiftScheduleResponse {
	return ShiftScheduleResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		ShiftTypeID: s.ShiftTypeID,
		ShiftName:   s.ShiftName,
		StartDate:   s.StartDate.Format("2006-01-02"),
		EndDate:     s.EndDate.Format("2006-01-02"),
	}
}
