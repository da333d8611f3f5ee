package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/finance"
	"github.com/packpal/packpal-backend-go/internal/domain/product"
	"github.com/packpal/packpal-backend-go/internal/domain/transaction"
)

type TransactionServiceImpl struct {
	transactionRepo transaction.TransactionRepository
	productRepo     product.ProductRepository
}

func NewTransactionService(
	transactionRepo transaction.TransactionRepository,
	productRepo product.ProductRepository,
) transaction.TransactionService {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
	}
}

func (s *TransactionServiceImpl) Create(ctx context.Context, req transaction.CreateTransactionRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	t := transaction.Transaction{
		Customer:        req.Customer,
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Qty:             req.Qty.Float64(),
		UnitPrice:       decimal.NewFromFloat(req.UnitPrice.Float64()),
		DiscountPerUnit: decimal.NewFromFloat(req.DiscountPerUnit.Float64()),
		Method:          req.Method,
		Status:          transaction.Status(req.Status),
	}

	if req.ProductID != nil && *req.ProductID != "" {
		p, err := s.productRepo.GetByID(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				return transaction.TransactionResponse{}, transaction.ErrProductNotResolved
			}
			return transaction.TransactionResponse{}, fmt.Errorf("failed to resolve product: %w", err)
		}
		if t.ProductName == "" {
			t.ProductName = p.Name
		}
	}

	if req.Total != nil {
		total := decimal.NewFromFloat(req.Total.Float64())
		t.Total = &total
	} else {
		unit := t.UnitPrice.Sub(t.DiscountPerUnit)
		if unit.IsNegative() {
			unit = decimal.Zero
		}
		total := unit.Mul(decimal.NewFromFloat(t.Qty))
		t.Total = &total
	}

	created, err := s.transactionRepo.Create(ctx, t)
	if err != nil {
		return transaction.TransactionResponse{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction.ToResponse(created), nil
}

func (s *TransactionServiceImpl) Get(ctx context.Context, id string) (transaction.TransactionResponse, error) {
	t, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}
	return transaction.ToResponse(t), nil
}

func (s *TransactionServiceImpl) List(ctx context.Context, status string) ([]transaction.TransactionResponse, error) {
	transactions, err := s.transactionRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]transaction.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, transaction.ToResponse(t))
	}
	return responses, nil
}

func (s *TransactionServiceImpl) Update(ctx context.Context, req transaction.UpdateTransactionRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	t, err := s.transactionRepo.Update(ctx, req)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}
	return transaction.ToResponse(t), nil
}

func (s *TransactionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, id)
}

// Revenue sums the per-record value waterfall over the window, skipping
// refunds entirely.
func (s *TransactionServiceImpl) Revenue(ctx context.Context, window transaction.RevenueWindow) (transaction.RevenueResponse, error) {
	transactions, err := s.transactionRepo.ListInWindow(ctx, window)
	if err != nil {
		return transaction.RevenueResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := transaction.RevenueResponse{Total: decimal.Zero}
	for _, t := range transactions {
		if t.IsRefund() {
			continue
		}
		resp.Total = resp.Total.Add(t.Value())
		resp.Count++
	}
	return resp, nil
}

// MonthlyRevenue returns the gap-filled last-N-months revenue series plus the
// current month's bucket.
func (s *TransactionServiceImpl) MonthlyRevenue(ctx context.Context, months int) (finance.MonthlySeriesResponse, error) {
	if months <= 0 {
		months = 12
	}

	now := time.Now()
	since := transaction.RevenueWindow{
		From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0),
	}

	buckets, err := s.transactionRepo.MonthlyRevenue(ctx, since)
	if err != nil {
		return finance.MonthlySeriesResponse{}, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}

	points := finance.MergeMonthly(buckets, months, now)
	return finance.MonthlySeriesResponse{
		Monthly:      points,
		CurrentMonth: points[len(points)-1],
	}, nil
}
