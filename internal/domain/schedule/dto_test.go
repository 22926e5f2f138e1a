package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

const (
	testEmployeeID  = "7b1d2f7e-9c1a-4f5b-8a2e-3d4c5b6a7f80"
	testShiftTypeID = "0e8f1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b"
)

func TestCreateShiftTypeRequestValidate(t *testing.T) {
	valid := CreateShiftTypeRequest{Name: "Morning", StartTime: "08:00", EndTime: "16:00"}
	assert.NoError(t, valid.Validate())

	bad := CreateShiftTypeRequest{Name: "", StartTime: "8am", EndTime: "25:00"}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "start_time")
	assert.Contains(t, fields, "end_time")
}

func TestCreateShiftScheduleRequestValidate(t *testing.T) {
	valid := CreateShiftScheduleRequest{
		EmployeeID:  testEmployeeID,
		ShiftTypeID: testShiftTypeID,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-30",
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.StartDate = "2026-09-30"
	reversed.EndDate = "2026-09-01"

	err := reversed.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")

	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	assert.NoError(t, sameDay.Validate(), "single-day schedule is allowed")
}
