package transaction

import (
	"context"

	"github.com/packpal/packpal-backend-go/internal/domain/finance"
)

type TransactionService interface {
	Create(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	Get(ctx context.Context, id string) (TransactionResponse, error)
	List(ctx context.Context, status string) ([]TransactionResponse, error)
	Update(ctx context.Context, req UpdateTransactionRequest) (TransactionResponse, error)
	Delete(ctx context.Context, id string) error

	// Revenue sums the value waterfall over the window, skipping refunds.
	Revenue(ctx context.Context, window RevenueWindow) (RevenueResponse, error)

	// MonthlyRevenue returns the gap-filled last-N-months series.
	MonthlyRevenue(ctx context.Context, months int) (finance.MonthlySeriesResponse, error)
}
