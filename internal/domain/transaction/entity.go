package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusRefund  Status = "Refund"
)

var Statuses = []string{string(StatusPaid), string(StatusPending), string(StatusRefund)}

// Transaction is one storefront sale line. Total and Amount are nullable on
// purpose: older records carry only the legacy amount field, newer ones an
// explicit total, and some only the qty/unitPrice pair.
type Transaction struct {
	ID              string
	Customer        string
	ProductID       *string
	ProductName     string
	Qty             float64
	UnitPrice       decimal.Decimal
	DiscountPerUnit decimal.Decimal
	Total           *decimal.Decimal
	Amount          *decimal.Decimal // legacy field
	Method          string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsRefund matches the status case-insensitively; refunds are skipped by the
// revenue aggregators, never summed as negative.
func (t Transaction) IsRefund() bool {
	return strings.EqualFold(string(t.Status), string(StatusRefund))
}

// Value resolves the record's monetary value through the documented field
// waterfall: explicit positive total first, then qty x max(0, unitPrice -
// discountPerUnit), then the legacy amount field, else zero. The order is
// load-bearing; changing it silently changes computed revenue.
func (t Transaction) Value() decimal.Decimal {
	if t.Total != nil && t.Total.IsPositive() {
		return *t.Total
	}

	unit := t.UnitPrice.Sub(t.DiscountPerUnit)
	if unit.IsNegative() {
		unit = decimal.Zero
	}
	if t.Qty > 0 && unit.IsPositive() {
		return unit.Mul(decimal.NewFromFloat(t.Qty))
	}

	if t.Amount != nil && t.Amount.IsPositive() {
		return *t.Amount
	}
	return decimal.Zero
}
