package employee

import "time"

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// Employee entity. Soft-deleted rows keep their data but carry DeletedAt.
type Employee struct {
	ID           string
	UserID       string
	DepartmentID *string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	Address      *string
	AvatarURL    *string

	Role             string
	EmploymentStatus EmploymentStatus
	HireDate         time.Time

	// Leave ledger: whole days remaining, never negative.
	LeaveBalance int

	// Payroll: next date a payment is due, advanced to the 25th of the
	// following month on settlement.
	NextDueDate *time.Time

	// External biometric device identifier, if enrolled.
	BiotimeID *string

	EmergencyContactName  *string
	EmergencyContactPhone *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Joined fields
	DepartmentName *string
}

type Department struct {
	ID   string
	Name string
}
