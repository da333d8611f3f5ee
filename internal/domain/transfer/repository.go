package transfer

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransferRepository interface {
	Create(ctx context.Context, t Transfer) (Transfer, error)
	GetByID(ctx context.Context, id string) (Transfer, error)
	List(ctx context.Context, month string) ([]Transfer, error)
	ExistsForMonth(ctx context.Context, empID, month string) (bool, error)
	MarkPaid(ctx context.Context, id string) (Transfer, error)
	Delete(ctx context.Context, id string) error

	// SumPending feeds the finance payables summary.
	SumPending(ctx context.Context) (decimal.Decimal, int, error)
}
