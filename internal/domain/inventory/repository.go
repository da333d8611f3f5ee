package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

type ItemRepository interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByItemID(ctx context.Context, itemID string) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Update(ctx context.Context, req UpdateItemRequest) (Item, error)
	Delete(ctx context.Context, itemID string) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, p Purchase) (Purchase, error)
	GetByID(ctx context.Context, id string) (Purchase, error)
	List(ctx context.Context, status string) ([]Purchase, error)
	Approve(ctx context.Context, id string) (Purchase, error)
	Delete(ctx context.Context, id string) error

	// SumPending values pending purchases through the item join:
	// sum(quantity * items.unit_price).
	SumPending(ctx context.Context) (decimal.Decimal, int, error)
}
