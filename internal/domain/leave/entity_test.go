package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(day(2026, 3, 10), day(2026, 3, 10)), "same day is one day")
	assert.Equal(t, 5, DaysInclusive(day(2026, 3, 10), day(2026, 3, 14)))
	assert.Equal(t, 0, DaysInclusive(day(2026, 3, 10), day(2026, 3, 9)), "reversed range is non-positive")
	assert.Equal(t, 3, DaysInclusive(day(2026, 2, 27), day(2026, 3, 1)), "spans month boundary")
}

func TestCovers(t *testing.T) {
	r := LeaveRequest{StartDate: day(2026, 4, 6), EndDate: day(2026, 4, 10)}

	assert.True(t, r.Covers(day(2026, 4, 6)), "start boundary")
	assert.True(t, r.Covers(day(2026, 4, 8)))
	assert.True(t, r.Covers(day(2026, 4, 10)), "end boundary")
	assert.False(t, r.Covers(day(2026, 4, 5)))
	assert.False(t, r.Covers(day(2026, 4, 11)))
}

func TestLeaveTypeValid(t *testing.T) {
	for _, lt := range []LeaveType{LeaveTypeVacation, LeaveTypeSick, LeaveTypePersonal, LeaveTypeUnpaid} {
		assert.True(t, lt.Valid())
	}
	assert.False(t, LeaveType("sabbatical").Valid())
}
