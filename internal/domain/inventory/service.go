package inventory

import "context"

type InventoryService interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	GetItem(ctx context.Context, itemID string) (ItemResponse, error)
	ListItems(ctx context.Context) ([]ItemResponse, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) (ItemResponse, error)
	DeleteItem(ctx context.Context, itemID string) error
	Summary(ctx context.Context) (SummaryResponse, error)

	CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (PurchaseResponse, error)
	GetPurchase(ctx context.Context, id string) (PurchaseResponse, error)
	ListPurchases(ctx context.Context, status string) ([]PurchaseResponse, error)
	ApprovePurchase(ctx context.Context, id string) (PurchaseResponse, error)
	DeletePurchase(ctx context.Context, id string) error
	PurchaseSummary(ctx context.Context) (PurchaseSummaryResponse, error)
}
