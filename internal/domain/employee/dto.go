package employee

import (
	"fmt"
	"strings"

	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID       string  `json:"user_id"`
	DepartmentID *string `json:"department_id,omitempty"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Role         string  `json:"role"`
	HireDate     string  `json:"hire_date"`
	LeaveBalance *int    `json:"leave_balance,omitempty"`
	BiotimeID    *string `json:"biotime_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !user.Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of super_admin, hr_manager, manager, user"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if r.LeaveBalance != nil && *r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_balance", Message: "must be non-negative"})
	}
	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries only the fields the caller set; nil pointers
// are never applied, so unmentioned fields survive a round trip untouched.
type UpdateEmployeeRequest struct {
	ID                    string            `json:"-"`
	DepartmentID          *string           `json:"department_id,omitempty"`
	FirstName             *string           `json:"first_name,omitempty"`
	LastName              *string           `json:"last_name,omitempty"`
	PhoneNumber           *string           `json:"phone_number,omitempty"`
	Address               *string           `json:"address,omitempty"`
	AvatarURL             *string           `json:"avatar_url,omitempty"`
	Role                  *string           `json:"role,omitempty"`
	EmploymentStatus      *EmploymentStatus `json:"employment_status,omitempty"`
	LeaveBalance          *int              `json:"leave_balance,omitempty"`
	BiotimeID             *string           `json:"biotime_id,omitempty"`
	EmergencyContactName  *string           `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string           `json:"emergency_contact_phone,omitempty"`
}

// selfServiceFields is the narrow set a regular user may change on their own
// record. Admin roles may set every field. Kept as an explicit table so the
// boundary check is auditable in one place.
var selfServiceFields = map[string]bool{
	"phone_number":            true,
	"address":                 true,
	"avatar_url":              true,
	"emergency_contact_name":  true,
	"emergency_contact_phone": true,
}

// setFields lists the JSON names of every field present in the request.
func (r *UpdateEmployeeRequest) setFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("department_id", r.DepartmentID != nil)
	add("first_name", r.FirstName != nil)
	add("last_name", r.LastName != nil)
	add("phone_number", r.PhoneNumber != nil)
	add("address", r.Address != nil)
	add("avatar_url", r.AvatarURL != nil)
	add("role", r.Role != nil)
	add("employment_status", r.EmploymentStatus != nil)
	add("leave_balance", r.LeaveBalance != nil)
	add("biotime_id", r.BiotimeID != nil)
	add("emergency_contact_name", r.EmergencyContactName != nil)
	add("emergency_contact_phone", r.EmergencyContactPhone != nil)
	return fields
}

// AllowedForRole rejects the update when it touches fields outside the
// caller's whitelist.
func (r *UpdateEmployeeRequest) AllowedForRole(role user.Role) error {
	if role == user.RoleSuperAdmin || role == user.RoleHRManager {
		return nil
	}

	var denied []string
	for _, field := range r.setFields() {
		if !selfServiceFields[field] {
			denied = append(denied, field)
		}
	}
	if len(denied) > 0 {
		return fmt.Errorf("%w: %s", ErrFieldNotAllowed, strings.Join(denied, ", "))
	}
	return nil
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "must not be empty"})
	}
	if r.Role != nil && !user.Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of super_admin, hr_manager, manager, user"})
	}
	if r.EmploymentStatus != nil {
		switch *r.EmploymentStatus {
		case EmploymentStatusActive, EmploymentStatusOnLeave, EmploymentStatusTerminated:
		default:
			errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be active, on_leave or terminated"})
		}
	}
	if r.LeaveBalance != nil && *r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_balance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTo copies set fields onto the entity.
func (r *UpdateEmployeeRequest) ApplyTo(emp *Employee) {
	if r.DepartmentID != nil {
		emp.DepartmentID = r.DepartmentID
	}
	if r.FirstName != nil {
		emp.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		emp.LastName = *r.LastName
	}
	if r.PhoneNumber != nil {
		emp.PhoneNumber = r.PhoneNumber
	}
	if r.Address != nil {
		emp.Address = r.Address
	}
	if r.AvatarURL != nil {
		emp.AvatarURL = r.AvatarURL
	}
	if r.Role != nil {
		emp.Role = *r.Role
	}
	if r.EmploymentStatus != nil {
		emp.EmploymentStatus = *r.EmploymentStatus
	}
	if r.LeaveBalance != nil {
		emp.LeaveBalance = *r.LeaveBalance
	}
	if r.BiotimeID != nil {
		emp.BiotimeID = r.BiotimeID
	}
	if r.EmergencyContactName != nil {
		emp.EmergencyContactName = r.EmergencyContactName
	}
	if r.EmergencyContactPhone != nil {
		emp.EmergencyContactPhone = r.EmergencyContactPhone
	}
}

type EmployeeResponse struct {
	ID                    string  `json:"id"`
	UserID                string  `json:"user_id"`
	DepartmentID          *string `json:"department_id,omitempty"`
	DepartmentName        *string `json:"department_name,omitempty"`
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	Email                 string  `json:"email"`
	PhoneNumber           *string `json:"phone_number,omitempty"`
	Address               *string `json:"address,omitempty"`
	AvatarURL             *string `json:"avatar_url,omitempty"`
	Role                  string  `json:"role"`
	EmploymentStatus      string  `json:"employment_status"`
	HireDate              string  `json:"hire_date"`
	LeaveBalance          int     `json:"leave_balance"`
	NextDueDate           *string `json:"next_due_date,omitempty"`
	BiotimeID             *string `json:"biotime_id,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
}

func ToResponse(emp Employee) EmployeeResponse {
	var nextDue *string
	if emp.NextDueDate != nil {
		str := emp.NextDueDate.Format("2006-01-02")
		nextDue = &str
	}

	return EmployeeResponse{
		ID:                    emp.ID,
		UserID:                emp.UserID,
		DepartmentID:          emp.DepartmentID,
		DepartmentName:        emp.DepartmentName,
		FirstName:             emp.FirstName,
		LastName:              emp.LastName,
		Email:                 emp.Email,
		PhoneNumber:           emp.PhoneNumber,
		Address:               emp.Address,
		AvatarURL:             emp.AvatarURL,
		Role:                  emp.Role,
		EmploymentStatus:      string(emp.EmploymentStatus),
		HireDate:              emp.HireDate.Format("2006-01-02"),
		LeaveBalance:          emp.LeaveBalance,
		NextDueDate:           nextDue,
		BiotimeID:             emp.BiotimeID,
		EmergencyContactName:  emp.EmergencyContactName,
		EmergencyContactPhone: emp.EmergencyContactPhone,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, ToResponse(emp))
	}
	return result
}
