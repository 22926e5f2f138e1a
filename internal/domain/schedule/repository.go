package schedule

import (
	"context"
	"time"
)

// ShiftTypeRepository - interface for the shift_types table
type ShiftTypeRepository interface {
	Create(ctx context.Context, shiftType ShiftType) (ShiftType, error)
	GetByID(ctx context.Context, id string) (ShiftType, error)
	List(ctx context.Context) ([]ShiftType, error)
	Update(ctx context.Context, req UpdateShiftTypeRequest) error
	Delete(ctx context.Context, id string) error
}

// ShiftScheduleRepository - interface for the shift_schedules table
type ShiftScheduleRepository interface {
	Create(ctx context.Context, schedule ShiftSchedule) (ShiftSchedule, error)
	GetByID(ctx context.Context, id string) (ShiftSchedule, error)
	List(ctx context.Context) ([]ShiftSchedule, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]ShiftSchedule, error)
	GetForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (ShiftSchedule, error)
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
	Update(ctx context.Context, req UpdateShiftScheduleRequest) error
	Delete(ctx context.Context, id string) error
}
