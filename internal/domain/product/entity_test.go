package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	cases := []struct {
		name     string
		product  Product
		expected string
	}{
		{
			"no discount",
			Product{Price: decimal.NewFromInt(4500), DiscountType: DiscountNone},
			"4500",
		},
		{
			"percentage discount",
			Product{Price: decimal.NewFromInt(4500), DiscountType: DiscountPercentage, DiscountValue: decimal.NewFromInt(10)},
			"4050",
		},
		{
			"fixed discount",
			Product{Price: decimal.NewFromInt(4500), DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(500)},
			"4000",
		},
		{
			"fixed discount larger than price clamps to zero",
			Product{Price: decimal.NewFromInt(300), DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(500)},
			"0",
		},
		{
			"full percentage discount",
			Product{Price: decimal.NewFromInt(4500), DiscountType: DiscountPercentage, DiscountValue: decimal.NewFromInt(100)},
			"0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tc.expected)
			assert.NoError(t, err)
			assert.True(t, want.Equal(tc.product.EffectivePrice()),
				"want %s, got %s", tc.expected, tc.product.EffectivePrice())
		})
	}
}
