package attendance

import "time"

// GracePeriod is the tolerance applied to shift start and end before a punch
// counts as late or early-departure.
const GracePeriod = 30 * time.Minute

// halfDayThreshold: a worked span under this duration earns the half-day label.
const halfDayThreshold = 4 * time.Hour

// ShiftWindow is the wall-clock span an employee was expected to work.
type ShiftWindow struct {
	Start time.Time
	End   time.Time
}

// DefaultShiftWindow returns the 09:00-17:00 fallback used when no schedule
// row covers the date.
func DefaultShiftWindow(date time.Time) ShiftWindow {
	y, m, d := date.Date()
	return ShiftWindow{
		Start: time.Date(y, m, d, 9, 0, 0, 0, date.Location()),
		End:   time.Date(y, m, d, 17, 0, 0, 0, date.Location()),
	}
}

// Classify derives the attendance label set for one employee-day.
//
// Approved leave and a fully missing punch pair short-circuit to exclusive
// {on-leave} and {absent}. Otherwise late, early-departure and half-day
// accumulate independently; in-time is only awarded when nothing negative
// stuck and both punches bracket the shift; present is the fallback for
// incomplete punch data.
func Classify(window ShiftWindow, onLeave bool, checkIn, checkOut *time.Time) []Status {
	if onLeave {
		return []Status{StatusOnLeave}
	}

	if checkIn == nil && checkOut == nil {
		return []Status{StatusAbsent}
	}

	var statuses []Status

	lateThreshold := window.Start.Add(GracePeriod)
	earlyThreshold := window.End.Add(-GracePeriod)

	if checkIn != nil && checkIn.After(lateThreshold) {
		statuses = append(statuses, StatusLate)
	}

	if checkOut != nil && checkOut.Before(earlyThreshold) {
		statuses = append(statuses, StatusEarlyDeparture)
	}

	if checkIn != nil && checkOut != nil {
		if checkOut.Sub(*checkIn) < halfDayThreshold {
			statuses = append(statuses, StatusHalfDay)
		}
	}

	if len(statuses) == 0 && checkIn != nil && checkOut != nil {
		if !checkIn.After(window.Start) && !checkOut.Before(window.End) {
			statuses = append(statuses, StatusInTime)
		}
	}

	if len(statuses) == 0 {
		statuses = append(statuses, StatusPresent)
	}

	return statuses
}
