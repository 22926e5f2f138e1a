package cron

import (
	"context"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/user"
	payrollservice "github.com/madison-jay/edike-backend/internal/service/payroll"
)

// PayrollJobs drives the scheduled payroll settlement.
type PayrollJobs struct {
	payrollService *payrollservice.Service
}

func NewPayrollJobs(payrollService *payrollservice.Service) *PayrollJobs {
	return &PayrollJobs{payrollService: payrollService}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	// Due dates land on the 25th; an hourly sweep picks them up the same day.
	scheduler.AddJob(
		"settle_due_payroll",
		1*time.Hour,
		j.SettleDuePayments,
	)
}

// SettleDuePayments runs with a system identity so the settlement path does
// not depend on a logged-in user.
func (j *PayrollJobs) SettleDuePayments(ctx context.Context) error {
	ctx = user.NewContext(ctx, user.Identity{Role: user.RoleSuperAdmin})
	return j.payrollService.SettleDuePayments(ctx)
}
