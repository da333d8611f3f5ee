package salary

import "context"

type SalaryService interface {
	// Calc runs the payroll calculator for one employee and period, using
	// the most-recent-record fallback for attendance and advance data.
	Calc(ctx context.Context, empID, period string) (CalcResponse, error)

	// Summary sums net payable across all employees for a period.
	Summary(ctx context.Context, period string) (SummaryResponse, error)
}
