package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the finance-side employee registry entry. EmpID is the natural
// key referenced by attendance, advance and transfer records.
type Employee struct {
	ID            string
	EmpID         string
	Name          string
	Designation   *string
	BaseSalary    decimal.Decimal
	BankName      *string
	BankBranch    *string
	BankAccountNo *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
