package schedule

import "errors"

var (
	ErrShiftTypeNotFound     = errors.New("shift type not found")
	ErrShiftScheduleNotFound = errors.New("shift schedule not found")
	ErrOverlappingSchedule   = errors.New("an overlapping shift schedule exists for this employee")
)
