package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
	"github.com/madison-jay/edike-backend/internal/repository/postgresql"
)

type Service struct {
	db            *database.DB
	employeeRepo  employee.EmployeeRepository
	componentRepo payroll.SalaryComponentRepository
	chargeRepo    payroll.DefaultChargeRepository
	deductionRepo payroll.DeductionRepository
	paymentRepo   payroll.PaymentHistoryRepository

	// runTx wraps postgresql.WithTransaction; tests swap in a passthrough.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	componentRepo payroll.SalaryComponentRepository,
	chargeRepo payroll.DefaultChargeRepository,
	deductionRepo payroll.DeductionRepository,
	paymentRepo payroll.PaymentHistoryRepository,
) *Service {
	s := &Service{
		db:            db,
		employeeRepo:  employeeRepo,
		componentRepo: componentRepo,
		chargeRepo:    chargeRepo,
		deductionRepo: deductionRepo,
		paymentRepo:   paymentRepo,
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

// GeneratePayment settles one employee for one period. Calling it again for
// the same period returns the stored payment unchanged. The insert, the
// deduction flips and the due-date advance all commit or roll back together.
func (s *Service) GeneratePayment(ctx context.Context, req payroll.GeneratePaymentRequest) (payroll.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaymentResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	existing, err := s.paymentRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
	if err == nil {
		return s.toResponse(ctx, existing)
	}
	if !errors.Is(err, payroll.ErrPaymentNotFound) {
		return payroll.PaymentResponse{}, fmt.Errorf("check existing payment: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	components, err := s.componentRepo.GetActiveByEmployeeID(ctx, emp.ID)
	if err != nil {
		return payroll.PaymentResponse{}, fmt.Errorf("load salary components: %w", err)
	}
	pending, err := s.deductionRepo.ListPendingByEmployeeID(ctx, emp.ID)
	if err != nil {
		return payroll.PaymentResponse{}, fmt.Errorf("load pending deductions: %w", err)
	}

	computation, err := Compute(components, pending)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	due, err := NextDueDate(req.Period)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	// Scheduler runs carry a system identity with no user id.
	var createdBy *string
	if identity.UserID != "" {
		createdBy = &identity.UserID
	}

	var payment payroll.PaymentHistory
	txErr := s.runTx(ctx, func(txCtx context.Context) error {
		payment, err = s.paymentRepo.Create(txCtx, payroll.PaymentHistory{
			EmployeeID:      emp.ID,
			PaymentDate:     time.Now().UTC(),
			MonthYear:       req.Period,
			GrossSalary:     computation.Gross,
			TotalDeductions: computation.TotalDeductions,
			NetSalary:       computation.Net,
			Status:          payroll.PaymentStatusCompleted,
			CreatedBy:       createdBy,
		})
		if err != nil {
			return err
		}
		if err := s.deductionRepo.MarkPaid(txCtx, computation.DeductionIDs, payment.ID); err != nil {
			return fmt.Errorf("mark deductions paid: %w", err)
		}
		return s.employeeRepo.SetNextDueDate(txCtx, emp.ID, due)
	})
	if txErr != nil {
		// Two generators racing on the same period: the loser returns the
		// winner's row.
		if errors.Is(txErr, payroll.ErrDuplicatePeriod) {
			winner, getErr := s.paymentRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
			if getErr != nil {
				return payroll.PaymentResponse{}, txErr
			}
			return s.toResponse(ctx, winner)
		}
		return payroll.PaymentResponse{}, txErr
	}

	return s.toResponse(ctx, payment)
}

// GenerateAll settles every active employee for the period. Per-employee
// failures are logged and skipped so one bad record never sinks the run.
func (s *Service) GenerateAll(ctx context.Context, req payroll.GenerateAllPaymentsRequest) ([]payroll.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}

	responses := make([]payroll.PaymentResponse, 0, len(employees))
	for _, emp := range employees {
		resp, err := s.GeneratePayment(ctx, payroll.GeneratePaymentRequest{
			EmployeeID: emp.ID,
			Period:     req.Period,
		})
		if err != nil {
			slog.Warn("skipping employee in payroll run",
				"employee_id", emp.ID,
				"period", req.Period,
				"error", err,
			)
			continue
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// SettleDuePayments settles every employee whose next due date has passed,
// for the current period. Driven by the scheduler.
func (s *Service) SettleDuePayments(ctx context.Context) error {
	now := time.Now().UTC()
	period := now.Format("2006-01")

	due, err := s.employeeRepo.ListDueForPayment(ctx, now)
	if err != nil {
		return fmt.Errorf("list employees due for payment: %w", err)
	}

	for _, emp := range due {
		if _, err := s.GeneratePayment(ctx, payroll.GeneratePaymentRequest{
			EmployeeID: emp.ID,
			Period:     period,
		}); err != nil {
			slog.Warn("skipping employee in scheduled payroll run",
				"employee_id", emp.ID,
				"period", period,
				"error", err,
			)
		}
	}
	return nil
}

func (s *Service) GetPayment(ctx context.Context, employeeID, period string) (payroll.PaymentResponse, error) {
	payment, err := s.paymentRepo.GetByEmployeeAndPeriod(ctx, employeeID, period)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}
	return s.toResponse(ctx, payment)
}

func (s *Service) ListPayments(ctx context.Context, employeeID string) ([]payroll.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	responses := make([]payroll.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp, err := s.toResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *Service) toResponse(ctx context.Context, payment payroll.PaymentHistory) (payroll.PaymentResponse, error) {
	deductions, err := s.deductionRepo.ListByPaymentHistoryID(ctx, payment.ID)
	if err != nil {
		return payroll.PaymentResponse{}, fmt.Errorf("load payment deductions: %w", err)
	}
	payment.Deductions = deductions

	var nextDue *string
	if emp, err := s.employeeRepo.GetByID(ctx, payment.EmployeeID); err == nil && emp.NextDueDate != nil {
		str := emp.NextDueDate.Format("2006-01-02")
		nextDue = &str
	}

	return payroll.ToPaymentResponse(payment, nextDue), nil
}

// ===== salary components =====

func (s *Service) CreateSalaryComponent(ctx context.Context, req payroll.CreateSalaryComponentRequest) (payroll.SalaryComponent, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryComponent{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return payroll.SalaryComponent{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.SalaryComponent{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	component := payroll.SalaryComponent{
		EmployeeID: req.EmployeeID,
		BaseSalary: req.BaseSalary,
		StartDate:  startDate,
		CreatedBy:  &identity.UserID,
	}
	if req.Bonus != nil {
		component.Bonus = *req.Bonus
	}
	if req.Incentives != nil {
		component.Incentives = *req.Incentives
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		component.EndDate = &endDate
	}
	return s.componentRepo.Create(ctx, component)
}

func (s *Service) GetSalaryComponent(ctx context.Context, id string) (payroll.SalaryComponent, error) {
	return s.componentRepo.GetByID(ctx, id)
}

func (s *Service) ListSalaryComponents(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	return s.componentRepo.ListByEmployeeID(ctx, employeeID)
}

func (s *Service) UpdateSalaryComponent(ctx context.Context, req payroll.UpdateSalaryComponentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.componentRepo.Update(ctx, req)
}

func (s *Service) DeleteSalaryComponent(ctx context.Context, id string) error {
	return s.componentRepo.Delete(ctx, id)
}

// ===== default charges =====

func (s *Service) CreateDefaultCharge(ctx context.Context, req payroll.CreateDefaultChargeRequest) (payroll.DefaultCharge, error) {
	if err := req.Validate(); err != nil {
		return payroll.DefaultCharge{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return payroll.DefaultCharge{}, err
	}

	charge := payroll.DefaultCharge{
		ChargeName:  req.ChargeName,
		PenaltyFee:  req.PenaltyFee,
		Description: req.Description,
		CreatedBy:   &identity.UserID,
	}
	return s.chargeRepo.Create(ctx, charge)
}

func (s *Service) GetDefaultCharge(ctx context.Context, id string) (payroll.DefaultCharge, error) {
	return s.chargeRepo.GetByID(ctx, id)
}

func (s *Service) ListDefaultCharges(ctx context.Context) ([]payroll.DefaultCharge, error) {
	return s.chargeRepo.List(ctx)
}

func (s *Service) UpdateDefaultCharge(ctx context.Context, req payroll.UpdateDefaultChargeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.chargeRepo.Update(ctx, req)
}

func (s *Service) DeleteDefaultCharge(ctx context.Context, id string) error {
	return s.chargeRepo.Delete(ctx, id)
}

// ===== deductions =====

// CreateDeduction refuses a second pending deduction for the same
// employee+charge; repeat offences should bump instances on the existing row
// instead.
func (s *Service) CreateDeduction(ctx context.Context, req payroll.CreateDeductionRequest) (payroll.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionResponse{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return payroll.DeductionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.DeductionResponse{}, err
	}
	charge, err := s.chargeRepo.GetByID(ctx, req.DefaultChargeID)
	if err != nil {
		return payroll.DeductionResponse{}, err
	}

	if _, err := s.deductionRepo.GetPendingByEmployeeAndCharge(ctx, req.EmployeeID, req.DefaultChargeID); err == nil {
		return payroll.DeductionResponse{}, payroll.ErrPendingDeductionExists
	} else if !errors.Is(err, payroll.ErrDeductionNotFound) {
		return payroll.DeductionResponse{}, err
	}

	deduction := payroll.Deduction{
		EmployeeID:      req.EmployeeID,
		DefaultChargeID: req.DefaultChargeID,
		Instances:       1,
		Status:          payroll.DeductionStatusPending,
		Reason:          req.Reason,
		CreatedBy:       &identity.UserID,
	}
	if req.PardonedFee != nil {
		deduction.PardonedFee = *req.PardonedFee
	}
	if req.Instances != nil {
		deduction.Instances = *req.Instances
	}

	created, err := s.deductionRepo.Create(ctx, deduction)
	if err != nil {
		return payroll.DeductionResponse{}, err
	}
	created.ChargeName = &charge.ChargeName
	created.PenaltyFee = charge.PenaltyFee
	return payroll.ToDeductionResponse(created), nil
}

func (s *Service) GetDeduction(ctx context.Context, id string) (payroll.DeductionResponse, error) {
	deduction, err := s.deductionRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.DeductionResponse{}, err
	}
	return payroll.ToDeductionResponse(deduction), nil
}

func (s *Service) ListDeductions(ctx context.Context, employeeID string) ([]payroll.DeductionResponse, error) {
	deductions, err := s.deductionRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	responses := make([]payroll.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		responses = append(responses, payroll.ToDeductionResponse(d))
	}
	return responses, nil
}

func (s *Service) UpdateDeduction(ctx context.Context, req payroll.UpdateDeductionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.deductionRepo.Update(ctx, req)
}

func (s *Service) DeleteDeduction(ctx context.Context, id string) error {
	return s.deductionRepo.Delete(ctx, id)
}
