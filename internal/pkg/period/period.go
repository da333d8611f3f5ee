package period

import (
	"fmt"
	"regexp"
	"time"
)

// Key format is "YYYY-MM", the granularity of every payroll-related record.
var keyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Current returns the current calendar month as "YYYY-MM" using the host
// machine's local date. No timezone normalization is performed.
func Current() string {
	return time.Now().Format("2006-01")
}

// Of returns the period key of an arbitrary point in time.
func Of(t time.Time) string {
	return t.Format("2006-01")
}

func IsValid(p string) bool {
	return keyRe.MatchString(p)
}

// Parse splits a period key into year and month.
func Parse(p string) (int, time.Month, error) {
	if !IsValid(p) {
		return 0, 0, fmt.Errorf("invalid period %q, expected YYYY-MM", p)
	}
	t, err := time.Parse("2006-01", p)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid period %q: %w", p, err)
	}
	return t.Year(), t.Month(), nil
}

// MonthBounds returns the half-open interval [start, end) covering the
// period's calendar month, for use in SQL date windows.
func MonthBounds(p string) (time.Time, time.Time, error) {
	year, month, err := Parse(p)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0), nil
}

// Add steps a period key forward (or backward for negative n) by n months.
func Add(p string, n int) (string, error) {
	year, month, err := Parse(p)
	if err != nil {
		return "", err
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0).Format("2006-01"), nil
}
