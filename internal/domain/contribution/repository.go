package contribution

import (
	"context"

	"github.com/shopspring/decimal"
)

type ContributionRepository interface {
	Create(ctx context.Context, c Contribution) (Contribution, error)
	GetByID(ctx context.Context, id string) (Contribution, error)
	List(ctx context.Context) ([]Contribution, error)
	MarkPaid(ctx context.Context, id string) (Contribution, error)

	// SumPendingTotals feeds the finance payables overview.
	SumPendingTotals(ctx context.Context) (decimal.Decimal, error)
}
