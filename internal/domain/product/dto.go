package product

import (
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/pkg/numeric"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

type CreateProductRequest struct {
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Price         numeric.Amount `json:"price"`
	Stock         numeric.Amount `json:"stock"`
	DiscountType  string         `json:"discountType"`
	DiscountValue numeric.Amount `json:"discountValue"`
	Rating        numeric.Amount `json:"rating"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Price.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}
	if r.Stock.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "stock", Message: "must be non-negative"})
	}
	if r.DiscountType == "" {
		r.DiscountType = string(DiscountNone)
	}
	if !validator.IsInSlice(r.DiscountType, DiscountTypes) {
		errs = append(errs, validator.ValidationError{Field: "discountType", Message: "must be none, percentage or fixed"})
	}
	if r.DiscountValue.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "discountValue", Message: "must be non-negative"})
	}
	if r.Rating.Float64() < 0 || r.Rating.Float64() > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID            string          `json:"-"`
	Name          *string         `json:"name,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Price         *numeric.Amount `json:"price,omitempty"`
	Stock         *numeric.Amount `json:"stock,omitempty"`
	DiscountType  *string         `json:"discountType,omitempty"`
	DiscountValue *numeric.Amount `json:"discountValue,omitempty"`
	Rating        *numeric.Amount `json:"rating,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Price != nil && r.Price.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}
	if r.Stock != nil && r.Stock.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "stock", Message: "must be non-negative"})
	}
	if r.DiscountType != nil && !validator.IsInSlice(*r.DiscountType, DiscountTypes) {
		errs = append(errs, validator.ValidationError{Field: "discountType", Message: "must be none, percentage or fixed"})
	}
	if r.DiscountValue != nil && r.DiscountValue.Float64() < 0 {
		errs = append(errs, validator.ValidationError{Field: "discountValue", Message: "must be non-negative"})
	}
	if r.Rating != nil && (r.Rating.Float64() < 0 || r.Rating.Float64() > 5) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	Stock          int             `json:"stock"`
	DiscountType   DiscountType    `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	Rating         float64         `json:"rating"`
}

func ToResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		EffectivePrice: p.EffectivePrice(),
		Stock:          p.Stock,
		DiscountType:   p.DiscountType,
		DiscountValue:  p.DiscountValue,
		Rating:         p.Rating,
	}
}

// SummaryResponse backs the catalog dashboard cards. StockValue is priced at
// list price; EffectiveStockValue (summary-v2) prices stock after discounts.
type SummaryResponse struct {
	Count               int             `json:"count"`
	StockValue          decimal.Decimal `json:"totalValue"`
	EffectiveStockValue decimal.Decimal `json:"effectiveValue,omitempty"`
	LowStockCount       int             `json:"lowStockCount"`
}
