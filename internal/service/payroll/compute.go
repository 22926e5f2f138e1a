package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/madison-jay/edike-backend/internal/domain/payroll"
)

// Computation holds the derived settlement amounts for one employee+period.
type Computation struct {
	Gross           decimal.Decimal
	TotalDeductions decimal.Decimal
	Net             decimal.Decimal
	DeductionIDs    []string
}

// Compute derives the settlement for a set of active salary components and
// pending deductions. Gross is the sum of component contributions,
// deductions the sum of pending amounts, net their difference. An employee
// with neither compensation nor deductions has nothing to settle.
func Compute(components []payroll.SalaryComponent, pending []payroll.Deduction) (Computation, error) {
	var c Computation
	c.Gross = decimal.Zero
	c.TotalDeductions = decimal.Zero

	for _, component := range components {
		c.Gross = c.Gross.Add(component.Gross())
	}
	for _, d := range pending {
		c.TotalDeductions = c.TotalDeductions.Add(d.Amount())
		c.DeductionIDs = append(c.DeductionIDs, d.ID)
	}

	if c.Gross.IsZero() && c.TotalDeductions.IsZero() {
		return Computation{}, payroll.ErrNoCompensationData
	}

	c.Net = c.Gross.Sub(c.TotalDeductions)
	return c, nil
}

// NextDueDate is the 25th of the month following the settled period.
func NextDueDate(period string) (time.Time, error) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month()+1, 25, 0, 0, 0, 0, time.UTC), nil
}
