package transaction

import (
	"context"

	"github.com/packpal/packpal-backend-go/internal/domain/finance"
)

type TransactionRepository interface {
	Create(ctx context.Context, t Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, status string) ([]Transaction, error)
	Update(ctx context.Context, req UpdateTransactionRequest) (Transaction, error)
	Delete(ctx context.Context, id string) error

	// ListInWindow returns every transaction inside the optional date window,
	// refunds included; the service applies the status policy.
	ListInWindow(ctx context.Context, window RevenueWindow) ([]Transaction, error)

	// MonthlyRevenue groups non-refund revenue by (year, month).
	MonthlyRevenue(ctx context.Context, since RevenueWindow) ([]finance.MonthBucket, error)
}
