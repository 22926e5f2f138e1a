package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/schedule"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type Service struct {
	db           *database.DB
	typeRepo     schedule.ShiftTypeRepository
	scheduleRepo schedule.ShiftScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewService(
	db *database.DB,
	typeRepo schedule.ShiftTypeRepository,
	scheduleRepo schedule.ShiftScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) *Service {
	return &Service{db: db, typeRepo: typeRepo, scheduleRepo: scheduleRepo, employeeRepo: employeeRepo}
}

func (s *Service) CreateShiftType(ctx context.Context, req schedule.CreateShiftTypeRequest) (schedule.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftTypeResponse{}, err
	}

	created, err := s.typeRepo.Create(ctx, schedule.ShiftType{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return schedule.ShiftTypeResponse{}, fmt.Errorf("create shift type: %w", err)
	}
	return schedule.ToShiftTypeResponse(created), nil
}

func (s *Service) GetShiftType(ctx context.Context, id string) (schedule.ShiftTypeResponse, error) {
	shiftType, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.ShiftTypeResponse{}, err
	}
	return schedule.ToShiftTypeResponse(shiftType), nil
}

func (s *Service) ListShiftTypes(ctx context.Context) ([]schedule.ShiftTypeResponse, error) {
	shiftTypes, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shift types: %w", err)
	}

	responses := make([]schedule.ShiftTypeResponse, 0, len(shiftTypes))
	for _, t := range shiftTypes {
		responses = append(responses, schedule.ToShiftTypeResponse(t))
	}
	return responses, nil
}

func (s *Service) UpdateShiftType(ctx context.Context, req schedule.UpdateShiftTypeRequest) (schedule.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftTypeResponse{}, err
	}
	if err := s.typeRepo.Update(ctx, req); err != nil {
		return schedule.ShiftTypeResponse{}, err
	}
	return s.GetShiftType(ctx, req.ID)
}

func (s *Service) DeleteShiftType(ctx context.Context, id string) error {
	return s.typeRepo.Delete(ctx, id)
}

// CreateShiftSchedule rejects ranges that overlap an existing schedule for
// the same employee.
func (s *Service) CreateShiftSchedule(ctx context.Context, req schedule.CreateShiftScheduleRequest) (schedule.ShiftScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}
	if _, err := s.typeRepo.GetByID(ctx, req.ShiftTypeID); err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	overlaps, err := s.scheduleRepo.HasOverlap(ctx, req.EmployeeID, startDate, endDate, "")
	if err != nil {
		return schedule.ShiftScheduleResponse{}, fmt.Errorf("check schedule overlap: %w", err)
	}
	if overlaps {
		return schedule.ShiftScheduleResponse{}, schedule.ErrOverlappingSchedule
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.ShiftSchedule{
		EmployeeID:  req.EmployeeID,
		ShiftTypeID: req.ShiftTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return schedule.ShiftScheduleResponse{}, fmt.Errorf("create shift schedule: %w", err)
	}

	created, err = s.scheduleRepo.GetByID(ctx, created.ID)
	if err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}
	return schedule.ToShiftScheduleResponse(created), nil
}

func (s *Service) GetShiftSchedule(ctx context.Context, id string) (schedule.ShiftScheduleResponse, error) {
	sched, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}
	return schedule.ToShiftScheduleResponse(sched), nil
}

func (s *Service) ListShiftSchedules(ctx context.Context, employeeID string) ([]schedule.ShiftScheduleResponse, error) {
	var (
		schedules []schedule.ShiftSchedule
		err       error
	)
	if employeeID != "" {
		schedules, err = s.scheduleRepo.ListByEmployeeID(ctx, employeeID)
	} else {
		schedules, err = s.scheduleRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list shift schedules: %w", err)
	}

	responses := make([]schedule.ShiftScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, schedule.ToShiftScheduleResponse(sched))
	}
	return responses, nil
}

func (s *Service) UpdateShiftSchedule(ctx context.Context, req schedule.UpdateShiftScheduleRequest) (schedule.ShiftScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}

	startDate := existing.StartDate
	endDate := existing.EndDate
	if req.StartDate != nil {
		startDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		endDate, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if req.ShiftTypeID != nil {
		if _, err := s.typeRepo.GetByID(ctx, *req.ShiftTypeID); err != nil {
			return schedule.ShiftScheduleResponse{}, err
		}
	}

	overlaps, err := s.scheduleRepo.HasOverlap(ctx, existing.EmployeeID, startDate, endDate, existing.ID)
	if err != nil {
		return schedule.ShiftScheduleResponse{}, fmt.Errorf("check schedule overlap: %w", err)
	}
	if overlaps {
		return schedule.ShiftScheduleResponse{}, schedule.ErrOverlappingSchedule
	}

	if err := s.scheduleRepo.Update(ctx, req); err != nil {
		return schedule.ShiftScheduleResponse{}, err
	}
	return s.GetShiftSchedule(ctx, req.ID)
}

func (s *Service) DeleteShiftSchedule(ctx context.Context, id string) error {
	return s.scheduleRepo.Delete(ctx, id)
}
