package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeMonthlyEmptyBuckets(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	points := MergeMonthly(nil, 12, now)

	require.Len(t, points, 12)
	assert.Equal(t, "2023-07", points[0].Period)
	assert.Equal(t, "2024-06", points[11].Period)

	seen := map[string]bool{}
	for _, p := range points {
		assert.True(t, p.Total.IsZero())
		assert.Zero(t, p.Count)
		assert.False(t, seen[p.Period], "duplicate period %s", p.Period)
		seen[p.Period] = true
	}
}

func TestMergeMonthlyMatchesBuckets(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	buckets := []MonthBucket{
		// Deliberately out of order.
		{Year: 2024, Month: time.June, Total: decimal.NewFromInt(900), Count: 3},
		{Year: 2024, Month: time.April, Total: decimal.NewFromInt(400), Count: 1},
		// Outside the window, must be ignored.
		{Year: 2023, Month: time.January, Total: decimal.NewFromInt(111), Count: 9},
	}

	points := MergeMonthly(buckets, 3, now)

	require.Len(t, points, 3)
	assert.Equal(t, "2024-04", points[0].Period)
	assert.Equal(t, "Apr", points[0].Label)
	assert.True(t, decimal.NewFromInt(400).Equal(points[0].Total))
	assert.Equal(t, 1, points[0].Count)

	assert.Equal(t, "2024-05", points[1].Period)
	assert.True(t, points[1].Total.IsZero())

	assert.Equal(t, "2024-06", points[2].Period)
	assert.True(t, decimal.NewFromInt(900).Equal(points[2].Total))
}

func TestMergeMonthlyIdempotent(t *testing.T) {
	now := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	buckets := []MonthBucket{
		{Year: 2024, Month: time.November, Total: decimal.NewFromInt(50), Count: 2},
	}

	first := MergeMonthly(buckets, 6, now)
	second := MergeMonthly(buckets, 6, now)
	assert.Equal(t, first, second)
}

func TestMergeMonthlyYearBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	points := MergeMonthly(nil, 3, now)

	require.Len(t, points, 3)
	assert.Equal(t, "2023-11", points[0].Period)
	assert.Equal(t, "2023-12", points[1].Period)
	assert.Equal(t, "2024-01", points[2].Period)
}

func TestMergeMonthlyNonPositiveN(t *testing.T) {
	assert.Empty(t, MergeMonthly(nil, 0, time.Now()))
}
