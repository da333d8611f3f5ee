package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateTransactionRequest struct {
	Customer        string          `json:"customer"`
	ProductID       *string         `json:"productId,omitempty"`
	ProductName     string          `json:"productName"`
	Qty             numeric.Amount  `json:"qty"`
	UnitPrice       numeric.Amount  `json:"unitPrice"`
	DiscountPerUnit numeric.Amount  `json:"discountPerUnit"`
	Total           *numeric.Amount `json:"total,omitempty"`
	Method          string          `json:"method"`
	Status          string          `json:"status"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Customer) {
		errs = append(errs, validator.ValidationError{Field: "customer", Message: "is required"})
	}
	if r.Qty.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "qty", Message: "must be non-negative"})
	}
	if r.UnitPrice.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "unitPrice", Message: "must be non-negative"})
	}
	if r.DiscountPerUnit.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "discountPerUnit", Message: "must be non-negative"})
	}
	if r.Status == "" {
		r.Status = string(StatusPaid)
	}
	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Paid, Pending or Refund"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTransactionRequest struct {
	ID     string  `json:"-"`
	Status *string `json:"status,omitempty"`
	Method *string `json:"method,omitempty"`
}

func (r *UpdateTransactionRequest) Validate() error {
	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		return validator.ValidationErrors{{Field: "status", Message: "must be Paid, Pending or Refund"}}
	}
	return nil
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	Customer        string          `json:"customer"`
	ProductID       *string         `json:"productId,omitempty"`
	ProductName     string          `json:"productName"`
	Qty             float64         `json:"qty"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPerUnit decimal.Decimal `json:"discountPerUnit"`
	Total           decimal.Decimal `json:"total"`
	Method          string          `json:"method"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func ToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Customer:        t.Customer,
		ProductID:       t.ProductID,
		ProductName:     t.ProductName,
		Qty:             t.Qty,
		UnitPrice:       t.UnitPrice,
		DiscountPerUnit: t.DiscountPerUnit,
		Total:           t.Value(),
		Method:          t.Method,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
	}
}

// RevenueWindow is the optional date filter on revenue aggregation. Zero
// bounds mean unbounded.
type RevenueWindow struct {
	From time.Time
	To   time.Time
}

type RevenueResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}
