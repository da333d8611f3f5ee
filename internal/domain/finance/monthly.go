package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthBucket is one (year, month) group as it comes back from a data-store
// aggregation: arbitrary order, possibly sparse.
type MonthBucket struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
	Count int
}

// MonthPoint is one entry of a gap-filled chart series.
type MonthPoint struct {
	Period string          `json:"period"` // "YYYY-MM"
	Label  string          `json:"label"`  // "Jan"
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

// MergeMonthly merges sparse buckets into exactly n points, one per calendar
// month ending at now's month, oldest first. Months without a bucket carry
// zeros. The merge is idempotent and independent of bucket order.
func MergeMonthly(buckets []MonthBucket, n int, now time.Time) []MonthPoint {
	if n <= 0 {
		return []MonthPoint{}
	}

	type key struct {
		year  int
		month time.Month
	}
	index := make(map[key]MonthBucket, len(buckets))
	for _, b := range buckets {
		index[key{b.Year, b.Month}] = b
	}

	points := make([]MonthPoint, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, i, 0)
		point := MonthPoint{
			Period: m.Format("2006-01"),
			Label:  m.Format("Jan"),
			Total:  decimal.Zero,
		}
		if b, ok := index[key{m.Year(), m.Month()}]; ok {
			point.Total = b.Total
			point.Count = b.Count
		}
		points = append(points, point)
	}
	return points
}

// MonthlySeriesResponse is the standard "last N months" chart payload.
type MonthlySeriesResponse struct {
	Monthly      []MonthPoint `json:"monthly"`
	CurrentMonth MonthPoint   `json:"currentMonth"`
}
