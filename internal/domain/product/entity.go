package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var DiscountTypes = []string{string(DiscountNone), string(DiscountPercentage), string(DiscountFixed)}

type Product struct {
	ID            string
	Name          string
	Category      string
	Price         decimal.Decimal
	Stock         int
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var oneHundred = decimal.NewFromInt(100)

// EffectivePrice applies the product's discount to its list price, clamped
// at zero. DiscountValue is a percentage for "percentage" and an absolute
// amount for "fixed".
func (p Product) EffectivePrice() decimal.Decimal {
	price := p.Price
	switch p.DiscountType {
	case DiscountPercentage:
		price = p.Price.Sub(p.Price.Mul(p.DiscountValue).Div(oneHundred))
	case DiscountFixed:
		price = p.Price.Sub(p.DiscountValue)
	}
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}
