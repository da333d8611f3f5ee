package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a raw-material/stock line. ItemID is the natural key purchases
// reference.
type Item struct {
	ID            string
	ItemID        string
	Name          string
	Quantity      float64
	UnitPrice     decimal.Decimal
	AvgDailyUsage float64
	LeadTimeDays  float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReorderLevel is the usage expected during the supplier lead time.
func (i Item) ReorderLevel() float64 {
	return i.AvgDailyUsage * i.LeadTimeDays
}

// LowStock reports whether the on-hand quantity has fallen to or below the
// reorder level.
func (i Item) LowStock() bool {
	return i.Quantity <= i.ReorderLevel()
}

type PurchaseStatus string

const (
	PurchasePending  PurchaseStatus = "pending"
	PurchaseApproved PurchaseStatus = "approved"
)

// Purchase is an inbound order against an inventory item; pricing comes from
// the item join at summary time.
type Purchase struct {
	ID        string
	ItemID    string
	Quantity  float64
	Status    PurchaseStatus
	OrderDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ItemName  *string
	UnitPrice *decimal.Decimal
}
