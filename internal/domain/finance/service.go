package finance

import "context"

type FinanceService interface {
	// Receivables sums the value of Pending transactions.
	Receivables(ctx context.Context) (TotalSummary, error)

	// Payables sums pending purchases (priced through the inventory join)
	// plus unpaid salary transfers.
	Payables(ctx context.Context) (TotalSummary, error)

	Overview(ctx context.Context) (OverviewResponse, error)
}
