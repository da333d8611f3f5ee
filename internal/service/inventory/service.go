package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/inventory"
)

type InventoryServiceImpl struct {
	itemRepo     inventory.ItemRepository
	purchaseRepo inventory.PurchaseRepository
}

func NewInventoryService(
	itemRepo inventory.ItemRepository,
	purchaseRepo inventory.PurchaseRepository,
) inventory.InventoryService {
	return &InventoryServiceImpl{
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *InventoryServiceImpl) CreateItem(ctx context.Context, req inventory.CreateItemRequest) (inventory.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ItemResponse{}, err
	}

	item := inventory.Item{
		ItemID:        req.ItemID,
		Name:          req.Name,
		Quantity:      req.Quantity.Float64(),
		UnitPrice:     decimal.NewFromFloat(req.UnitPrice.Float64()),
		AvgDailyUsage: req.AvgDailyUsage.Float64(),
		LeadTimeDays:  req.LeadTimeDays.Float64(),
	}

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, inventory.ErrItemIDExists) {
			return inventory.ItemResponse{}, err
		}
		return inventory.ItemResponse{}, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return inventory.ToItemResponse(created), nil
}

func (s *InventoryServiceImpl) GetItem(ctx context.Context, itemID string) (inventory.ItemResponse, error) {
	item, err := s.itemRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return inventory.ItemResponse{}, err
	}
	return inventory.ToItemResponse(item), nil
}

func (s *InventoryServiceImpl) ListItems(ctx context.Context) ([]inventory.ItemResponse, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, inventory.ToItemResponse(item))
	}
	return responses, nil
}

func (s *InventoryServiceImpl) UpdateItem(ctx context.Context, req inventory.UpdateItemRequest) (inventory.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ItemResponse{}, err
	}

	item, err := s.itemRepo.Update(ctx, req)
	if err != nil {
		return inventory.ItemResponse{}, err
	}
	return inventory.ToItemResponse(item), nil
}

func (s *InventoryServiceImpl) DeleteItem(ctx context.Context, itemID string) error {
	return s.itemRepo.Delete(ctx, itemID)
}

func (s *InventoryServiceImpl) Summary(ctx context.Context) (inventory.SummaryResponse, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return inventory.SummaryResponse{}, fmt.Errorf("failed to list inventory items: %w", err)
	}

	summary := inventory.SummaryResponse{Count: len(items)}
	for _, item := range items {
		summary.TotalValue = summary.TotalValue.Add(item.UnitPrice.Mul(decimal.NewFromFloat(item.Quantity)))
		if item.LowStock() {
			summary.LowStockCount++
		}
	}
	return summary, nil
}

func (s *InventoryServiceImpl) CreatePurchase(ctx context.Context, req inventory.CreatePurchaseRequest) (inventory.PurchaseResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.PurchaseResponse{}, err
	}

	// The purchase must point at a known item; pricing comes from it later.
	if _, err := s.itemRepo.GetByItemID(ctx, req.ItemID); err != nil {
		if errors.Is(err, inventory.ErrItemNotFound) {
			return inventory.PurchaseResponse{}, inventory.ErrItemNotResolved
		}
		return inventory.PurchaseResponse{}, fmt.Errorf("failed to resolve item: %w", err)
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		if d, err := time.Parse("2006-01-02", req.OrderDate); err == nil {
			orderDate = d
		}
	}

	created, err := s.purchaseRepo.Create(ctx, inventory.Purchase{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity.Float64(),
		Status:    inventory.PurchasePending,
		OrderDate: orderDate,
	})
	if err != nil {
		return inventory.PurchaseResponse{}, fmt.Errorf("failed to create purchase: %w", err)
	}
	return inventory.ToPurchaseResponse(created), nil
}

func (s *InventoryServiceImpl) GetPurchase(ctx context.Context, id string) (inventory.PurchaseResponse, error) {
	p, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return inventory.PurchaseResponse{}, err
	}
	return inventory.ToPurchaseResponse(p), nil
}

func (s *InventoryServiceImpl) ListPurchases(ctx context.Context, status string) ([]inventory.PurchaseResponse, error) {
	purchases, err := s.purchaseRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, inventory.ToPurchaseResponse(p))
	}
	return responses, nil
}

func (s *InventoryServiceImpl) ApprovePurchase(ctx context.Context, id string) (inventory.PurchaseResponse, error) {
	p, err := s.purchaseRepo.Approve(ctx, id)
	if err != nil {
		return inventory.PurchaseResponse{}, err
	}
	return inventory.ToPurchaseResponse(p), nil
}

func (s *InventoryServiceImpl) DeletePurchase(ctx context.Context, id string) error {
	return s.purchaseRepo.Delete(ctx, id)
}

func (s *InventoryServiceImpl) PurchaseSummary(ctx context.Context) (inventory.PurchaseSummaryResponse, error) {
	total, count, err := s.purchaseRepo.SumPending(ctx)
	if err != nil {
		return inventory.PurchaseSummaryResponse{}, err
	}
	return inventory.PurchaseSummaryResponse{Total: total, Count: count}, nil
}
