package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "vacation"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypePersonal LeaveType = "personal"
	LeaveTypeUnpaid   LeaveType = "unpaid"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeVacation, LeaveTypeSick, LeaveTypePersonal, LeaveTypeUnpaid:
		return true
	}
	return false
}

// LeaveRequest entity. Days are inclusive of both endpoints; the balance is
// only touched on approval, atomically against the employee row.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     LeaveStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Days returns the inclusive day span of the request.
func (r LeaveRequest) Days() int {
	return DaysInclusive(r.StartDate, r.EndDate)
}

// DaysInclusive counts calendar days between start and end, both included.
// A same-day request is one day; a reversed range comes out non-positive.
func DaysInclusive(start, end time.Time) int {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// Covers reports whether the request span includes the given date.
func (r LeaveRequest) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(r.StartDate.Truncate(24*time.Hour)) && !d.After(r.EndDate.Truncate(24*time.Hour))
}
