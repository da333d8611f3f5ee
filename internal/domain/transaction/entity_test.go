package transaction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(i int64) *decimal.Decimal {
	d := decimal.NewFromInt(i)
	return &d
}

func TestValueWaterfall(t *testing.T) {
	cases := []struct {
		name string
		tx   Transaction
		want int64
	}{
		{
			"explicit total wins",
			Transaction{Total: dec(9000), Qty: 2, UnitPrice: decimal.NewFromInt(100)},
			9000,
		},
		{
			"computed from qty and unit price",
			Transaction{Qty: 3, UnitPrice: decimal.NewFromInt(4500), DiscountPerUnit: decimal.NewFromInt(500)},
			12000,
		},
		{
			"discount larger than unit price clamps to zero then falls through",
			Transaction{Qty: 3, UnitPrice: decimal.NewFromInt(400), DiscountPerUnit: decimal.NewFromInt(500), Amount: dec(750)},
			750,
		},
		{
			"legacy amount fallback",
			Transaction{Amount: dec(1250)},
			1250,
		},
		{
			"nothing resolvable",
			Transaction{},
			0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := decimal.NewFromInt(tc.want)
			assert.True(t, want.Equal(tc.tx.Value()), "want %d, got %s", tc.want, tc.tx.Value())
		})
	}
}

func TestIsRefundCaseInsensitive(t *testing.T) {
	assert.True(t, Transaction{Status: "Refund"}.IsRefund())
	assert.True(t, Transaction{Status: "REFUND"}.IsRefund())
	assert.True(t, Transaction{Status: "refund"}.IsRefund())
	assert.False(t, Transaction{Status: "Paid"}.IsRefund())
}
