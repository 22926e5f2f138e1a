package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/domain/user"
)

const (
	testEmployeeID = "018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5b"
	testAdminID    = "018f3a2b-1111-7e5f-8a9b-0c1d2e3f4a5b"
)

type fakeEmployeeRepo struct {
	emp         employee.Employee
	lastDueDate time.Time
	dueDateSets int
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != f.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}
func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return f.emp, nil
}
func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) ListDueForPayment(ctx context.Context, asOf time.Time) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error         { return nil }
func (f *fakeEmployeeRepo) DecrementLeaveBalance(ctx context.Context, id string, days int) error {
	return nil
}
func (f *fakeEmployeeRepo) SetNextDueDate(ctx context.Context, id string, due time.Time) error {
	f.lastDueDate = due
	f.dueDateSets++
	return nil
}

type fakeComponentRepo struct {
	active []payroll.SalaryComponent
}

func (f *fakeComponentRepo) Create(ctx context.Context, c payroll.SalaryComponent) (payroll.SalaryComponent, error) {
	return c, nil
}
func (f *fakeComponentRepo) GetByID(ctx context.Context, id string) (payroll.SalaryComponent, error) {
	return payroll.SalaryComponent{}, payroll.ErrSalaryComponentNotFound
}
func (f *fakeComponentRepo) GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	return f.active, nil
}
func (f *fakeComponentRepo) ListByEmployeeID(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	return f.active, nil
}
func (f *fakeComponentRepo) Update(ctx context.Context, req payroll.UpdateSalaryComponentRequest) error {
	return nil
}
func (f *fakeComponentRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeDeductionRepo struct {
	pending       []payroll.Deduction
	markPaidIDs   []string
	markPaidCalls int
}

func (f *fakeDeductionRepo) Create(ctx context.Context, d payroll.Deduction) (payroll.Deduction, error) {
	return d, nil
}
func (f *fakeDeductionRepo) GetByID(ctx context.Context, id string) (payroll.Deduction, error) {
	return payroll.Deduction{}, payroll.ErrDeductionNotFound
}
func (f *fakeDeductionRepo) ListByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Deduction, error) {
	return nil, nil
}
func (f *fakeDeductionRepo) ListPendingByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Deduction, error) {
	return f.pending, nil
}
func (f *fakeDeductionRepo) GetPendingByEmployeeAndCharge(ctx context.Context, employeeID, chargeID string) (payroll.Deduction, error) {
	return payroll.Deduction{}, payroll.ErrDeductionNotFound
}
func (f *fakeDeductionRepo) ListByPaymentHistoryID(ctx context.Context, paymentHistoryID string) ([]payroll.Deduction, error) {
	return nil, nil
}
func (f *fakeDeductionRepo) Update(ctx context.Context, req payroll.UpdateDeductionRequest) error {
	return nil
}
func (f *fakeDeductionRepo) MarkPaid(ctx context.Context, ids []string, paymentHistoryID string) error {
	f.markPaidIDs = append(f.markPaidIDs, ids...)
	f.markPaidCalls++
	return nil
}
func (f *fakeDeductionRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePaymentRepo struct {
	stored      map[string]payroll.PaymentHistory
	createCalls int

	// When set, Create fails as if another generator won the unique race and
	// GetByEmployeeAndPeriod starts returning winner afterwards.
	failDuplicate bool
	winner        payroll.PaymentHistory
}

func (f *fakePaymentRepo) key(employeeID, period string) string { return employeeID + "|" + period }

func (f *fakePaymentRepo) Create(ctx context.Context, p payroll.PaymentHistory) (payroll.PaymentHistory, error) {
	f.createCalls++
	if f.failDuplicate {
		return payroll.PaymentHistory{}, payroll.ErrDuplicatePeriod
	}
	p.ID = "pay-1"
	if f.stored == nil {
		f.stored = make(map[string]payroll.PaymentHistory)
	}
	f.stored[f.key(p.EmployeeID, p.MonthYear)] = p
	return p, nil
}

func (f *fakePaymentRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (payroll.PaymentHistory, error) {
	if f.failDuplicate && f.createCalls > 0 {
		return f.winner, nil
	}
	if p, ok := f.stored[f.key(employeeID, period)]; ok {
		return p, nil
	}
	return payroll.PaymentHistory{}, payroll.ErrPaymentNotFound
}

func (f *fakePaymentRepo) ListByEmployeeID(ctx context.Context, employeeID string) ([]payroll.PaymentHistory, error) {
	return nil, nil
}

func newTestService(empRepo *fakeEmployeeRepo, compRepo *fakeComponentRepo, dedRepo *fakeDeductionRepo, payRepo *fakePaymentRepo) *Service {
	svc := NewService(nil, empRepo, compRepo, nil, dedRepo, payRepo)
	svc.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return svc
}

func adminContext() context.Context {
	return user.NewContext(context.Background(), user.Identity{
		UserID:     testAdminID,
		EmployeeID: testAdminID,
		Role:       user.RoleSuperAdmin,
	})
}

func TestGeneratePaymentIsIdempotent(t *testing.T) {
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: testEmployeeID}}
	compRepo := &fakeComponentRepo{active: []payroll.SalaryComponent{
		{ID: "comp-1", EmployeeID: testEmployeeID, BaseSalary: decimal.NewFromInt(5000)},
	}}
	dedRepo := &fakeDeductionRepo{pending: []payroll.Deduction{
		{ID: "ded-1", EmployeeID: testEmployeeID, Instances: 2, PenaltyFee: decimal.NewFromInt(100), PardonedFee: decimal.NewFromInt(50)},
	}}
	payRepo := &fakePaymentRepo{}
	svc := newTestService(empRepo, compRepo, dedRepo, payRepo)

	req := payroll.GeneratePaymentRequest{EmployeeID: testEmployeeID, Period: "2026-08"}

	first, err := svc.GeneratePayment(adminContext(), req)
	require.NoError(t, err)
	assert.True(t, first.GrossSalary.Equal(decimal.NewFromInt(5000)), first.GrossSalary.String())
	assert.True(t, first.TotalDeductions.Equal(decimal.NewFromInt(150)), first.TotalDeductions.String())
	assert.True(t, first.NetSalary.Equal(decimal.NewFromInt(4850)), first.NetSalary.String())
	assert.Equal(t, []string{"ded-1"}, dedRepo.markPaidIDs)
	assert.Equal(t, time.Date(2026, time.September, 25, 0, 0, 0, 0, time.UTC), empRepo.lastDueDate)

	second, err := svc.GeneratePayment(adminContext(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.Equal(t, 1, payRepo.createCalls, "settling the same period twice must not insert twice")
	assert.Equal(t, 1, dedRepo.markPaidCalls)
	assert.Equal(t, 1, empRepo.dueDateSets)
}

func TestGeneratePaymentRaceReturnsWinner(t *testing.T) {
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: testEmployeeID}}
	compRepo := &fakeComponentRepo{active: []payroll.SalaryComponent{
		{ID: "comp-1", EmployeeID: testEmployeeID, BaseSalary: decimal.NewFromInt(5000)},
	}}
	dedRepo := &fakeDeductionRepo{}
	payRepo := &fakePaymentRepo{
		failDuplicate: true,
		winner: payroll.PaymentHistory{
			ID:          "winner-1",
			EmployeeID:  testEmployeeID,
			MonthYear:   "2026-08",
			GrossSalary: decimal.NewFromInt(5000),
			NetSalary:   decimal.NewFromInt(5000),
			Status:      payroll.PaymentStatusCompleted,
		},
	}
	svc := newTestService(empRepo, compRepo, dedRepo, payRepo)

	resp, err := svc.GeneratePayment(adminContext(), payroll.GeneratePaymentRequest{
		EmployeeID: testEmployeeID,
		Period:     "2026-08",
	})
	require.NoError(t, err)

	assert.Equal(t, "winner-1", resp.ID)
	assert.Equal(t, 0, dedRepo.markPaidCalls, "the losing generator must not touch deductions")
	assert.Equal(t, 0, empRepo.dueDateSets, "the losing generator must not move the due date")
}
