package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReorderLevel(t *testing.T) {
	item := Item{AvgDailyUsage: 12, LeadTimeDays: 5}
	assert.Equal(t, 60.0, item.ReorderLevel())
}

func TestLowStock(t *testing.T) {
	item := Item{Quantity: 50, AvgDailyUsage: 12, LeadTimeDays: 5}
	assert.True(t, item.LowStock())

	item.Quantity = 61
	assert.False(t, item.LowStock())

	// No usage data: only an empty shelf counts as low.
	empty := Item{Quantity: 0}
	assert.True(t, empty.LowStock())
}
