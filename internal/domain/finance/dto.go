package finance

import "github.com/shopspring/decimal"

// TotalSummary backs the receivables/payables dashboard cards.
type TotalSummary struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// OverviewResponse is the combined finance dashboard payload.
type OverviewResponse struct {
	Revenue              decimal.Decimal `json:"revenue"`
	Receivables          TotalSummary    `json:"receivables"`
	Payables             TotalSummary    `json:"payables"`
	PendingContributions decimal.Decimal `json:"pendingContributions"`
}
