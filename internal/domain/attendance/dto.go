package attendance

import (
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

// RecordRequest upserts the punch pair for one employee-day; the label set is
// always recomputed server-side.
type RecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	BiotimeID  *string `json:"biotime_id,omitempty"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SyncRequest ingests biometric punches for a date range; absent rows are
// materialized for days without punches.
type SyncRequest struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Punches   []PunchRecord `json:"punches"`
}

// PunchRecord is a raw punch event from the biometric device service.
type PunchRecord struct {
	BiotimeID  string `json:"biotime_id"`
	PunchTime  string `json:"punch_time"`  // ISO8601
	PunchState string `json:"punch_state"` // check-in or check-out
}

func (r *SyncRequest) Validate() error {
	var errs validator.ValidationErrors

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
	for i, punch := range r.Punches {
		if _, ok := validator.IsValidDateTime(punch.PunchTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "punches", Message: "punch " + validator.Itoa(i) + " has an invalid punch_time"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	CheckIn    *string  `json:"check_in,omitempty"`
	CheckOut   *string  `json:"check_out,omitempty"`
	Statuses   []string `json:"statuses"`
	BiotimeID  *string  `json:"biotime_id,omitempty"`
}

func ToResponse(t Transaction) TransactionResponse {
	statuses := make([]string, 0, len(t.Statuses))
	for _, s := range t.Statuses {
		statuses = append(statuses, string(s))
	}

	resp := TransactionResponse{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		Date:       t.Date.Format("2006-01-02"),
		Statuses:   statuses,
		BiotimeID:  t.BiotimeID,
	}
	if t.CheckIn != nil {
		str := t.CheckIn.Format("2006-01-02T15:04:05Z07:00")
		resp.CheckIn = &str
	}
	if t.CheckOut != nil {
		str := t.CheckOut.Format("2006-01-02T15:04:05Z07:00")
		resp.CheckOut = &str
	}
	return resp
}

func ToResponses(transactions []Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, ToResponse(t))
	}
	return result
}
