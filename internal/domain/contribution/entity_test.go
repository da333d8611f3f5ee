package contribution

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromBaseTotal(t *testing.T) {
	c := FromBaseTotal("2024-06", decimal.NewFromInt(1000000))

	assert.Equal(t, "2024-06", c.Period)
	assert.True(t, decimal.NewFromInt(80000).Equal(c.EPFEmp), c.EPFEmp.String())
	assert.True(t, decimal.NewFromInt(120000).Equal(c.EPFEr), c.EPFEr.String())
	assert.True(t, decimal.NewFromInt(30000).Equal(c.ETF), c.ETF.String())
	assert.True(t, decimal.NewFromInt(230000).Equal(c.Total), c.Total.String())
	assert.Equal(t, StatusPending, c.Status)
}

func TestFromBaseTotalZero(t *testing.T) {
	c := FromBaseTotal("2024-06", decimal.Zero)
	assert.True(t, c.Total.IsZero())
}
