package employee

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestCreateEmployeeRequestValidate(t *testing.T) {
	valid := CreateEmployeeRequest{
		UserID:    "u-1",
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		Role:      "user",
		HireDate:  "2026-01-15",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Email = "not-an-email"
	bad.Role = "director"
	bad.HireDate = "15/01/2026"

	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "hire_date")
}

func TestUpdateEmployeeRequestAllowedForRole(t *testing.T) {
	contact := UpdateEmployeeRequest{
		PhoneNumber:          strPtr("+233201234567"),
		Address:              strPtr("12 Ridge Rd"),
		EmergencyContactName: strPtr("Kojo Mensah"),
	}
	assert.NoError(t, contact.AllowedForRole(user.RoleUser), "contact fields are self-service")
	assert.NoError(t, contact.AllowedForRole(user.RoleHRManager))

	balance := 99
	escalation := UpdateEmployeeRequest{
		Role:         strPtr("super_admin"),
		LeaveBalance: &balance,
		PhoneNumber:  strPtr("+233201234567"),
	}
	assert.NoError(t, escalation.AllowedForRole(user.RoleSuperAdmin))
	assert.NoError(t, escalation.AllowedForRole(user.RoleHRManager))

	err := escalation.AllowedForRole(user.RoleUser)
	require.ErrorIs(t, err, ErrFieldNotAllowed)
	assert.Contains(t, err.Error(), "role")
	assert.Contains(t, err.Error(), "leave_balance")
	assert.NotContains(t, err.Error(), "phone_number", "allowed field is not reported")
}

func TestUpdateEmployeeRequestUnsetFieldsSurvive(t *testing.T) {
	emp := Employee{
		FirstName:    "Ama",
		LastName:     "Mensah",
		Role:         "user",
		LeaveBalance: 12,
		PhoneNumber:  strPtr("+233200000000"),
	}

	var req UpdateEmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Amara"}`), &req))
	require.NoError(t, req.Validate())

	req.ApplyTo(&emp)

	assert.Equal(t, "Amara", emp.FirstName)
	assert.Equal(t, "Mensah", emp.LastName)
	assert.Equal(t, 12, emp.LeaveBalance)
	require.NotNil(t, emp.PhoneNumber)
	assert.Equal(t, "+233200000000", *emp.PhoneNumber)
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	neg := -1
	req := UpdateEmployeeRequest{
		FirstName:    strPtr(""),
		Role:         strPtr("intern"),
		LeaveBalance: &neg,
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "leave_balance")
}
