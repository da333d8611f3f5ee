package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

// Statutory contribution rates applied to the organization-wide base total.
var (
	EPFEmployeeRate = decimal.NewFromFloat(0.08)
	EPFEmployerRate = decimal.NewFromFloat(0.12)
	ETFRate         = decimal.NewFromFloat(0.03)
)

// Contribution locks the EPF/ETF figures for one period. BaseTotal is the
// sum of all employee base salaries at creation time.
type Contribution struct {
	ID        string
	Period    string
	BaseTotal decimal.Decimal
	EPFEmp    decimal.Decimal
	EPFEr     decimal.Decimal
	ETF       decimal.Decimal
	Total     decimal.Decimal
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromBaseTotal derives the statutory split. Total is the sum of the three
// contribution lines, not of base salary.
func FromBaseTotal(periodKey string, baseTotal decimal.Decimal) Contribution {
	epfEmp := baseTotal.Mul(EPFEmployeeRate)
	epfEr := baseTotal.Mul(EPFEmployerRate)
	etf := baseTotal.Mul(ETFRate)
	return Contribution{
		Period:    periodKey,
		BaseTotal: baseTotal,
		EPFEmp:    epfEmp,
		EPFEr:     epfEr,
		ETF:       etf,
		Total:     epfEmp.Add(epfEr).Add(etf),
		Status:    StatusPending,
	}
}
