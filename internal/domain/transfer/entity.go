package transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

// Transfer is a salary payout instruction for one employee and month.
// Amounts are rounded to the whole currency unit on write.
type Transfer struct {
	ID        string
	EmpID     string
	EmpName   string
	Amount    decimal.Decimal
	Month     string // period key "YYYY-MM"
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
