package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, empID string) error

	// SumBaseSalaries feeds the EPF/ETF contribution base total.
	SumBaseSalaries(ctx context.Context) (decimal.Decimal, error)
}
