package attendance

import "time"

type Status string

const (
	StatusOnLeave        Status = "on-leave"
	StatusAbsent         Status = "absent"
	StatusLate           Status = "late"
	StatusEarlyDeparture Status = "early-departure"
	StatusHalfDay        Status = "half-day"
	StatusInTime         Status = "in-time"
	StatusPresent        Status = "present"
)

// Transaction - one attendance row per (employee, date). Statuses hold the
// derived label set; punches may be missing on either side.
type Transaction struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Statuses   []Status
	BiotimeID  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
