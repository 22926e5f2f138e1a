package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func defaultWindow() ShiftWindow {
	return DefaultShiftWindow(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
}

func at(hour, minute int) *time.Time {
	t := time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestClassify_OnLeaveIsExclusive(t *testing.T) {
	// Punches recorded on an approved leave day are ignored entirely.
	statuses := Classify(defaultWindow(), true, at(9, 45), at(16, 0))
	assert.Equal(t, []Status{StatusOnLeave}, statuses)
}

func TestClassify_NoPunchesIsAbsent(t *testing.T) {
	statuses := Classify(defaultWindow(), false, nil, nil)
	assert.Equal(t, []Status{StatusAbsent}, statuses)
}

func TestClassify_LateWithoutEarlyDeparture(t *testing.T) {
	// Shift 09:00-17:00, grace 30m: 09:45 is late, 16:50 is not early.
	statuses := Classify(defaultWindow(), false, at(9, 45), at(16, 50))

	assert.Contains(t, statuses, StatusLate)
	assert.NotContains(t, statuses, StatusEarlyDeparture)
	assert.NotContains(t, statuses, StatusInTime)
}

func TestClassify_BoundaryPunchesAreNotFlagged(t *testing.T) {
	// Exactly on the grace thresholds: 09:30 in, 16:30 out.
	statuses := Classify(defaultWindow(), false, at(9, 30), at(16, 30))

	assert.NotContains(t, statuses, StatusLate)
	assert.NotContains(t, statuses, StatusEarlyDeparture)
	assert.Equal(t, []Status{StatusPresent}, statuses)
}

func TestClassify_LateAndHalfDayCoOccur(t *testing.T) {
	// Arrives late and works under four hours.
	statuses := Classify(defaultWindow(), false, at(13, 0), at(16, 0))

	assert.Contains(t, statuses, StatusLate)
	assert.Contains(t, statuses, StatusHalfDay)
	assert.Contains(t, statuses, StatusEarlyDeparture)
}

func TestClassify_InTime(t *testing.T) {
	statuses := Classify(defaultWindow(), false, at(8, 55), at(17, 10))
	assert.Equal(t, []Status{StatusInTime}, statuses)
}

func TestClassify_FullSpanWithoutBracketingIsPresent(t *testing.T) {
	// 09:10 in is within grace but after shift start, so no in-time.
	statuses := Classify(defaultWindow(), false, at(9, 10), at(17, 0))
	assert.Equal(t, []Status{StatusPresent}, statuses)
}

func TestClassify_SinglePunchFallsBackToPresent(t *testing.T) {
	statuses := Classify(defaultWindow(), false, at(9, 5), nil)
	assert.Equal(t, []Status{StatusPresent}, statuses)
}

func TestClassify_SingleLatePunch(t *testing.T) {
	statuses := Classify(defaultWindow(), false, at(10, 0), nil)
	assert.Equal(t, []Status{StatusLate}, statuses)
}

func TestClassify_Idempotent(t *testing.T) {
	first := Classify(defaultWindow(), false, at(9, 45), at(12, 0))
	second := Classify(defaultWindow(), false, at(9, 45), at(12, 0))
	assert.Equal(t, first, second)
}

func TestDefaultShiftWindow(t *testing.T) {
	window := DefaultShiftWindow(time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, 9, window.Start.Hour())
	assert.Equal(t, 17, window.End.Hour())
	assert.Equal(t, window.Start.Truncate(24*time.Hour), window.End.Truncate(24*time.Hour))
}
