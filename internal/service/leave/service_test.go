package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/leave"
	"github.com/madison-jay/edike-backend/internal/domain/user"
)

const (
	testRequesterID = "018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5b"
	testApproverID  = "018f3a2b-2222-7e5f-8a9b-0c1d2e3f4a5b"
)

type fakeRequestRepo struct {
	request     leave.LeaveRequest
	statusSets  int
	lastStatus  leave.LeaveStatus
	lastSetByID *string
}

func (f *fakeRequestRepo) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.ID = "req-1"
	return r, nil
}
func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if id != f.request.ID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return f.request, nil
}
func (f *fakeRequestRepo) List(ctx context.Context) ([]leave.LeaveRequest, error) { return nil, nil }
func (f *fakeRequestRepo) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, approvedBy *string, approvedAt *time.Time) error {
	f.statusSets++
	f.lastStatus = status
	f.lastSetByID = approvedBy
	f.request.Status = status
	f.request.ApprovedBy = approvedBy
	f.request.ApprovedAt = approvedAt
	return nil
}
func (f *fakeRequestRepo) HasApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return false, nil
}

type fakeBalanceRepo struct {
	fakeEmployee   employee.Employee
	decrementErr   error
	decrementCalls int
	lastDays       int
}

func (f *fakeBalanceRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeBalanceRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.fakeEmployee, nil
}
func (f *fakeBalanceRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return f.fakeEmployee, nil
}
func (f *fakeBalanceRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeBalanceRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) ListDueForPayment(ctx context.Context, asOf time.Time) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeBalanceRepo) SoftDelete(ctx context.Context, id string) error         { return nil }
func (f *fakeBalanceRepo) DecrementLeaveBalance(ctx context.Context, id string, days int) error {
	f.decrementCalls++
	f.lastDays = days
	if f.decrementErr != nil {
		return f.decrementErr
	}
	f.fakeEmployee.LeaveBalance -= days
	return nil
}
func (f *fakeBalanceRepo) SetNextDueDate(ctx context.Context, id string, due time.Time) error {
	return nil
}

func newTestService(requestRepo *fakeRequestRepo, employeeRepo *fakeBalanceRepo) *Service {
	svc := NewService(nil, requestRepo, employeeRepo)
	svc.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return svc
}

func approverContext() context.Context {
	return user.NewContext(context.Background(), user.Identity{
		UserID:     testApproverID,
		EmployeeID: testApproverID,
		Role:       user.RoleHRManager,
	})
}

func pendingRequest(days int) leave.LeaveRequest {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	return leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: testRequesterID,
		LeaveType:  leave.LeaveTypeVacation,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days-1),
		Status:     leave.LeaveStatusPending,
	}
}

func TestDecideApproveDecrementsBalance(t *testing.T) {
	requestRepo := &fakeRequestRepo{request: pendingRequest(3)}
	employeeRepo := &fakeBalanceRepo{fakeEmployee: employee.Employee{ID: testRequesterID, LeaveBalance: 10}}
	svc := newTestService(requestRepo, employeeRepo)

	resp, err := svc.Decide(approverContext(), leave.DecideLeaveRequestRequest{
		RequestID: "req-1",
		Decision:  string(leave.LeaveStatusApproved),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.LeaveStatusApproved), resp.Status)
	assert.Equal(t, leave.LeaveStatusApproved, requestRepo.lastStatus)
	assert.Equal(t, 3, employeeRepo.lastDays)
	assert.Equal(t, 7, employeeRepo.fakeEmployee.LeaveBalance)
	require.NotNil(t, requestRepo.lastSetByID)
	assert.Equal(t, testApproverID, *requestRepo.lastSetByID)
}

func TestDecideApproveFailsWhenBalanceGuardMisses(t *testing.T) {
	requestRepo := &fakeRequestRepo{request: pendingRequest(5)}
	employeeRepo := &fakeBalanceRepo{
		fakeEmployee: employee.Employee{ID: testRequesterID, LeaveBalance: 2},
		decrementErr: employee.ErrInsufficientBalance,
	}
	svc := newTestService(requestRepo, employeeRepo)

	_, err := svc.Decide(approverContext(), leave.DecideLeaveRequestRequest{
		RequestID: "req-1",
		Decision:  string(leave.LeaveStatusApproved),
	})
	require.ErrorIs(t, err, employee.ErrInsufficientBalance)

	assert.Equal(t, 1, employeeRepo.decrementCalls)
	assert.Equal(t, 0, requestRepo.statusSets, "a failed decrement must leave the request untouched")
	assert.Equal(t, leave.LeaveStatusPending, requestRepo.request.Status)
	assert.Equal(t, 2, employeeRepo.fakeEmployee.LeaveBalance)
}

func TestDecideRejectLeavesBalanceAlone(t *testing.T) {
	requestRepo := &fakeRequestRepo{request: pendingRequest(4)}
	employeeRepo := &fakeBalanceRepo{fakeEmployee: employee.Employee{ID: testRequesterID, LeaveBalance: 10}}
	svc := newTestService(requestRepo, employeeRepo)

	resp, err := svc.Decide(approverContext(), leave.DecideLeaveRequestRequest{
		RequestID: "req-1",
		Decision:  string(leave.LeaveStatusRejected),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.LeaveStatusRejected), resp.Status)
	assert.Equal(t, 0, employeeRepo.decrementCalls)
	assert.Equal(t, 10, employeeRepo.fakeEmployee.LeaveBalance)
}
