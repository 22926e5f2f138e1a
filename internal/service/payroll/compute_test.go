package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/domain/payroll"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeTotals(t *testing.T) {
	components := []payroll.SalaryComponent{
		{BaseSalary: dec("5000000"), Bonus: dec("500000"), Incentives: dec("250000")},
	}
	pending := []payroll.Deduction{
		{ID: "d1", Instances: 2, PenaltyFee: dec("100000"), PardonedFee: dec("50000")},
		{ID: "d2", Instances: 1, PenaltyFee: dec("75000"), PardonedFee: decimal.Zero},
	}

	c, err := Compute(components, pending)
	require.NoError(t, err)

	assert.True(t, c.Gross.Equal(dec("5750000")), "gross = %s", c.Gross)
	// d1: 2*100000-50000 = 150000; d2: 75000
	assert.True(t, c.TotalDeductions.Equal(dec("225000")), "deductions = %s", c.TotalDeductions)
	assert.True(t, c.Net.Equal(dec("5525000")), "net = %s", c.Net)
	assert.Equal(t, []string{"d1", "d2"}, c.DeductionIDs)
}

func TestComputeMultipleActiveComponents(t *testing.T) {
	components := []payroll.SalaryComponent{
		{BaseSalary: dec("3000000"), Bonus: decimal.Zero, Incentives: decimal.Zero},
		{BaseSalary: dec("1000000"), Bonus: dec("200000"), Incentives: decimal.Zero},
	}

	c, err := Compute(components, nil)
	require.NoError(t, err)
	assert.True(t, c.Gross.Equal(dec("4200000")))
	assert.True(t, c.TotalDeductions.IsZero())
	assert.True(t, c.Net.Equal(c.Gross))
}

func TestComputeDeductionsOnly(t *testing.T) {
	pending := []payroll.Deduction{
		{ID: "d1", Instances: 1, PenaltyFee: dec("100000"), PardonedFee: decimal.Zero},
	}

	c, err := Compute(nil, pending)
	require.NoError(t, err)
	assert.True(t, c.Gross.IsZero())
	assert.True(t, c.Net.Equal(dec("-100000")), "net may go negative when only deductions exist")
}

func TestComputeNoCompensationData(t *testing.T) {
	_, err := Compute(nil, nil)
	assert.ErrorIs(t, err, payroll.ErrNoCompensationData)

	// A fully pardoned deduction with no salary still counts as nothing to settle.
	pending := []payroll.Deduction{
		{ID: "d1", Instances: 1, PenaltyFee: dec("50000"), PardonedFee: dec("50000")},
	}
	_, err = Compute(nil, pending)
	assert.ErrorIs(t, err, payroll.ErrNoCompensationData)
}

func TestNextDueDate(t *testing.T) {
	due, err := NextDueDate("2026-08")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 25, 0, 0, 0, 0, time.UTC), due)

	// December rolls over the year.
	due, err = NextDueDate("2026-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, time.January, 25, 0, 0, 0, 0, time.UTC), due)

	_, err = NextDueDate("bogus")
	assert.Error(t, err)
}
