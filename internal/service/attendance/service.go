package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/attendance"
	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/leave"
	"github.com/madison-jay/edike-backend/internal/domain/schedule"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type Service struct {
	db              *database.DB
	transactionRepo attendance.TransactionRepository
	scheduleRepo    schedule.ShiftScheduleRepository
	leaveRepo       leave.LeaveRequestRepository
	employeeRepo    employee.EmployeeRepository
}

func NewService(
	db *database.DB,
	transactionRepo attendance.TransactionRepository,
	scheduleRepo schedule.ShiftScheduleRepository,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) *Service {
	return &Service{
		db:              db,
		transactionRepo: transactionRepo,
		scheduleRepo:    scheduleRepo,
		leaveRepo:       leaveRepo,
		employeeRepo:    employeeRepo,
	}
}

// Record upserts the punch pair for one employee-day and recomputes the
// label set from the resolved shift window and leave coverage.
func (s *Service) Record(ctx context.Context, req attendance.RecordRequest) (attendance.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TransactionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.TransactionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var checkIn, checkOut *time.Time
	if req.CheckIn != nil {
		t, _ := time.Parse(time.RFC3339, *req.CheckIn)
		checkIn = &t
	}
	if req.CheckOut != nil {
		t, _ := time.Parse(time.RFC3339, *req.CheckOut)
		checkOut = &t
	}

	transaction, err := s.classifyAndStore(ctx, req.EmployeeID, date, checkIn, checkOut, req.BiotimeID)
	if err != nil {
		return attendance.TransactionResponse{}, err
	}
	return attendance.ToResponse(transaction), nil
}

func (s *Service) classifyAndStore(ctx context.Context, employeeID string, date time.Time, checkIn, checkOut *time.Time, biotimeID *string) (attendance.Transaction, error) {
	window, err := s.resolveWindow(ctx, employeeID, date)
	if err != nil {
		return attendance.Transaction{}, err
	}

	onLeave, err := s.leaveRepo.HasApprovedOnDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Transaction{}, fmt.Errorf("check leave coverage: %w", err)
	}

	statuses := attendance.Classify(window, onLeave, checkIn, checkOut)

	return s.transactionRepo.Upsert(ctx, attendance.Transaction{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Statuses:   statuses,
		BiotimeID:  biotimeID,
	})
}

// resolveWindow uses the employee's shift schedule for the date when one
// exists, else the default 09:00-17:00 window.
func (s *Service) resolveWindow(ctx context.Context, employeeID string, date time.Time) (attendance.ShiftWindow, error) {
	sched, err := s.scheduleRepo.GetForEmployeeOnDate(ctx, employeeID, date)
	if err != nil {
		if err == schedule.ErrShiftScheduleNotFound {
			return attendance.DefaultShiftWindow(date), nil
		}
		return attendance.ShiftWindow{}, fmt.Errorf("resolve shift schedule: %w", err)
	}
	if sched.ShiftStartTime == nil || sched.ShiftEndTime == nil {
		return attendance.DefaultShiftWindow(date), nil
	}

	start, err1 := time.Parse("15:04", *sched.ShiftStartTime)
	end, err2 := time.Parse("15:04", *sched.ShiftEndTime)
	if err1 != nil || err2 != nil {
		return attendance.DefaultShiftWindow(date), nil
	}

	return attendance.ShiftWindow{
		Start: time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, date.Location()),
		End:   time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), 0, 0, date.Location()),
	}, nil
}

// Sync ingests raw biometric punches for a date range. The earliest
// check-in and latest check-out win per employee-day; employees enrolled on
// the device with no punches at all get an absent (or on-leave) row.
func (s *Service) Sync(ctx context.Context, req attendance.SyncRequest) ([]attendance.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	byBiotime := make(map[string]employee.Employee)
	for _, emp := range employees {
		if emp.BiotimeID != nil {
			byBiotime[*emp.BiotimeID] = emp
		}
	}

	type punchPair struct {
		checkIn  *time.Time
		checkOut *time.Time
	}
	pairs := make(map[string]map[string]*punchPair) // biotime id -> date -> pair

	for _, punch := range req.Punches {
		t, _ := time.Parse(time.RFC3339, punch.PunchTime)
		dateKey := t.Format("2006-01-02")

		if _, ok := byBiotime[punch.BiotimeID]; !ok {
			slog.Warn("punch for unknown biometric id", "biotime_id", punch.BiotimeID)
			continue
		}
		if pairs[punch.BiotimeID] == nil {
			pairs[punch.BiotimeID] = make(map[string]*punchPair)
		}
		pair := pairs[punch.BiotimeID][dateKey]
		if pair == nil {
			pair = &punchPair{}
			pairs[punch.BiotimeID][dateKey] = pair
		}

		punchTime := t
		switch punch.PunchState {
		case "check-in":
			if pair.checkIn == nil || punchTime.Before(*pair.checkIn) {
				pair.checkIn = &punchTime
			}
		case "check-out":
			if pair.checkOut == nil || punchTime.After(*pair.checkOut) {
				pair.checkOut = &punchTime
			}
		}
	}

	var responses []attendance.TransactionResponse
	for biotimeID, emp := range byBiotime {
		for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
			var checkIn, checkOut *time.Time
			if dayPairs, ok := pairs[biotimeID]; ok {
				if pair, ok := dayPairs[date.Format("2006-01-02")]; ok {
					checkIn, checkOut = pair.checkIn, pair.checkOut
				}
			}

			transaction, err := s.classifyAndStore(ctx, emp.ID, date, checkIn, checkOut, emp.BiotimeID)
			if err != nil {
				slog.Warn("skipping attendance row in sync",
					"employee_id", emp.ID,
					"date", date.Format("2006-01-02"),
					"error", err,
				)
				continue
			}
			responses = append(responses, attendance.ToResponse(transaction))
		}
	}
	return responses, nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.TransactionResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role == user.RoleUser && employeeID != identity.EmployeeID {
		return nil, user.ErrPermissionRequired
	}

	transactions, err := s.transactionRepo.ListByEmployeeID(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return attendance.ToResponses(transactions), nil
}

func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]attendance.TransactionResponse, error) {
	transactions, err := s.transactionRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return attendance.ToResponses(transactions), nil
}
