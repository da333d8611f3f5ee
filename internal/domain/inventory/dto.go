package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateItemRequest struct {
	ItemID        string         `json:"itemId"`
	Name          string         `json:"name"`
	Quantity      numeric.Amount `json:"quantity"`
	UnitPrice     numeric.Amount `json:"unitPrice"`
	AvgDailyUsage numeric.Amount `json:"avgDailyUsage"`
	LeadTimeDays  numeric.Amount `json:"leadTimeDays"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidItemID(r.ItemID) {
		errs = append(errs, validator.ValidationError{Field: "itemId", Message: "must be a short alphanumeric id"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	for field, v := range map[string]float64{
		"quantity":      r.Quantity.Float64(),
		"unitPrice":     r.UnitPrice.Float64(),
		"avgDailyUsage": r.AvgDailyUsage.Float64(),
		"leadTimeDays":  r.LeadTimeDays.Float64(),
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateItemRequest struct {
	ItemID        string          `json:"-"`
	Name          *string         `json:"name,omitempty"`
	Quantity      *numeric.Amount `json:"quantity,omitempty"`
	UnitPrice     *numeric.Amount `json:"unitPrice,omitempty"`
	AvgDailyUsage *numeric.Amount `json:"avgDailyUsage,omitempty"`
	LeadTimeDays  *numeric.Amount `json:"leadTimeDays,omitempty"`
}

func (r *UpdateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	check := func(field string, v *numeric.Amount) {
		if v != nil && v.Float64() < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	check("quantity", r.Quantity)
	check("unitPrice", r.UnitPrice)
	check("avgDailyUsage", r.AvgDailyUsage)
	check("leadTimeDays", r.LeadTimeDays)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"itemId"`
	Name          string          `json:"name"`
	Quantity      float64         `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	AvgDailyUsage float64         `json:"avgDailyUsage"`
	LeadTimeDays  float64         `json:"leadTimeDays"`
	ReorderLevel  float64         `json:"reorderLevel"`
	LowStock      bool            `json:"lowStock"`
}

func ToItemResponse(i Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		ItemID:        i.ItemID,
		Name:          i.Name,
		Quantity:      i.Quantity,
		UnitPrice:     i.UnitPrice,
		AvgDailyUsage: i.AvgDailyUsage,
		LeadTimeDays:  i.LeadTimeDays,
		ReorderLevel:  i.ReorderLevel(),
		LowStock:      i.LowStock(),
	}
}

type CreatePurchaseRequest struct {
	ItemID    string         `json:"itemId"`
	Quantity  numeric.Amount `json:"quantity"`
	OrderDate string         `json:"orderDate,omitempty"`
}

func (r *CreatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidItemID(r.ItemID) {
		errs = append(errs, validator.ValidationError{Field: "itemId", Message: "must be a short alphanumeric id"})
	}
	if r.Quantity.Float64() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}
	if r.OrderDate != "" {
		if _, ok := validator.IsValidDate(r.OrderDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "orderDate", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PurchaseResponse struct {
	ID        string           `json:"id"`
	ItemID    string           `json:"itemId"`
	ItemName  *string          `json:"itemName,omitempty"`
	Quantity  float64          `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Status    PurchaseStatus   `json:"status"`
	OrderDate time.Time        `json:"orderDate"`
}

func ToPurchaseResponse(p Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:        p.ID,
		ItemID:    p.ItemID,
		ItemName:  p.ItemName,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Status:    p.Status,
		OrderDate: p.OrderDate,
	}
}

// SummaryResponse backs the inventory dashboard card.
type SummaryResponse struct {
	Count         int             `json:"count"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	LowStockCount int             `json:"lowStockCount"`
}

// PurchaseSummaryResponse is the payables view over pending purchases.
type PurchaseSummaryResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}
