package schedule

import "time"

// ShiftType - a named working window, e.g. "Morning 06:00-14:00".
type ShiftType struct {
	ID        string
	Name      string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftSchedule assigns a shift type to an employee for a date span. Spans
// for the same employee must not overlap.
type ShiftSchedule struct {
	ID          string
	EmployeeID  string
	ShiftTypeID string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	ShiftName      *string
	ShiftStartTime *string
	ShiftEndTime   *string
}
