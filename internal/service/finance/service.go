package finance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/contribution"
	"github.com/packpal/packpal-backend-go/internal/domain/finance"
	"github.com/packpal/packpal-backend-go/internal/domain/inventory"
	"github.com/packpal/packpal-backend-go/internal/domain/transaction"
	"github.com/packpal/packpal-backend-go/internal/domain/transfer"
)

type FinanceServiceImpl struct {
	transactionRepo  transaction.TransactionRepository
	purchaseRepo     inventory.PurchaseRepository
	transferRepo     transfer.TransferRepository
	contributionRepo contribution.ContributionRepository
}

func NewFinanceService(
	transactionRepo transaction.TransactionRepository,
	purchaseRepo inventory.PurchaseRepository,
	transferRepo transfer.TransferRepository,
	contributionRepo contribution.ContributionRepository,
) finance.FinanceService {
	return &FinanceServiceImpl{
		transactionRepo:  transactionRepo,
		purchaseRepo:     purchaseRepo,
		transferRepo:     transferRepo,
		contributionRepo: contributionRepo,
	}
}

// Receivables sums the value waterfall over Pending transactions.
func (s *FinanceServiceImpl) Receivables(ctx context.Context) (finance.TotalSummary, error) {
	pending, err := s.transactionRepo.List(ctx, string(transaction.StatusPending))
	if err != nil {
		return finance.TotalSummary{}, fmt.Errorf("failed to list pending transactions: %w", err)
	}

	summary := finance.TotalSummary{Total: decimal.Zero}
	for _, t := range pending {
		summary.Total = summary.Total.Add(t.Value())
		summary.Count++
	}
	return summary, nil
}

// Payables combines pending purchases (valued through the inventory join)
// with unpaid salary transfers.
func (s *FinanceServiceImpl) Payables(ctx context.Context) (finance.TotalSummary, error) {
	purchaseTotal, purchaseCount, err := s.purchaseRepo.SumPending(ctx)
	if err != nil {
		return finance.TotalSummary{}, err
	}

	transferTotal, transferCount, err := s.transferRepo.SumPending(ctx)
	if err != nil {
		return finance.TotalSummary{}, err
	}

	return finance.TotalSummary{
		Total: purchaseTotal.Add(transferTotal),
		Count: purchaseCount + transferCount,
	}, nil
}

func (s *FinanceServiceImpl) Overview(ctx context.Context) (finance.OverviewResponse, error) {
	all, err := s.transactionRepo.ListInWindow(ctx, transaction.RevenueWindow{})
	if err != nil {
		return finance.OverviewResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	revenue := decimal.Zero
	for _, t := range all {
		if t.IsRefund() {
			continue
		}
		revenue = revenue.Add(t.Value())
	}

	receivables, err := s.Receivables(ctx)
	if err != nil {
		return finance.OverviewResponse{}, err
	}
	payables, err := s.Payables(ctx)
	if err != nil {
		return finance.OverviewResponse{}, err
	}
	pendingContributions, err := s.contributionRepo.SumPendingTotals(ctx)
	if err != nil {
		return finance.OverviewResponse{}, err
	}

	return finance.OverviewResponse{
		Revenue:              revenue,
		Receivables:          receivables,
		Payables:             payables,
		PendingContributions: pendingContributions,
	}, nil
}
