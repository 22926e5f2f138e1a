package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/domain/report"
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type fakeReportRepo struct {
	matrixRows   []report.AttendanceMatrixRow
	registerRows []report.PayrollRegisterRow
}

func (f *fakeReportRepo) GetAttendanceMatrix(ctx context.Context, month, year int) ([]report.AttendanceMatrixRow, error) {
	return f.matrixRows, nil
}

func (f *fakeReportRepo) GetPayrollRegister(ctx context.Context, period string) ([]report.PayrollRegisterRow, error) {
	return f.registerRows, nil
}

func TestPayrollRegisterRejectsBadPeriod(t *testing.T) {
	svc := NewService(&fakeReportRepo{})

	for _, period := range []string{"", "2026", "2026-13", "26-01", "2026/01"} {
		_, err := svc.PayrollRegister(context.Background(), period)
		require.Error(t, err, period)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, period)
		assert.Contains(t, verrs.ToMap(), "period")
	}
}

func TestPayrollRegisterTotals(t *testing.T) {
	repo := &fakeReportRepo{
		registerRows: []report.PayrollRegisterRow{
			{
				EmployeeName: "Amara Obi",
				GrossSalary:  decimal.NewFromInt(5000),
				Deductions:   decimal.NewFromInt(200),
				NetSalary:    decimal.NewFromInt(4800),
			},
			{
				EmployeeName: "Bayo Ade",
				GrossSalary:  decimal.NewFromInt(3000),
				Deductions:   decimal.Zero,
				NetSalary:    decimal.NewFromInt(3000),
			},
		},
	}
	svc := NewService(repo)

	register, err := svc.PayrollRegister(context.Background(), "2026-08")
	require.NoError(t, err)

	assert.Equal(t, "2026-08", register.Period)
	assert.Len(t, register.Rows, 2)
	assert.True(t, register.TotalGross.Equal(decimal.NewFromInt(8000)), register.TotalGross.String())
	assert.True(t, register.TotalDeductions.Equal(decimal.NewFromInt(200)), register.TotalDeductions.String())
	assert.True(t, register.TotalNet.Equal(decimal.NewFromInt(7800)), register.TotalNet.String())
}
