package finance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal-backend-go/internal/domain/contribution"
	"github.com/packpal/packpal-backend-go/internal/domain/finance"
	"github.com/packpal/packpal-backend-go/internal/domain/inventory"
	"github.com/packpal/packpal-backend-go/internal/domain/transaction"
	"github.com/packpal/packpal-backend-go/internal/domain/transfer"
)

type fakeTransactionRepo struct {
	transactions []transaction.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	return t, nil
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	return transaction.Transaction{}, transaction.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) List(ctx context.Context, status string) ([]transaction.Transaction, error) {
	var out []transaction.Transaction
	for _, t := range f.transactions {
		if status == "" || string(t.Status) == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, req transaction.UpdateTransactionRequest) (transaction.Transaction, error) {
	return transaction.Transaction{}, transaction.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeTransactionRepo) ListInWindow(ctx context.Context, window transaction.RevenueWindow) ([]transaction.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) MonthlyRevenue(ctx context.Context, since transaction.RevenueWindow) ([]finance.MonthBucket, error) {
	return nil, nil
}

type fakePurchaseRepo struct {
	pendingTotal decimal.Decimal
	pendingCount int
}

func (f *fakePurchaseRepo) Create(ctx context.Context, p inventory.Purchase) (inventory.Purchase, error) {
	return p, nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id string) (inventory.Purchase, error) {
	return inventory.Purchase{}, inventory.ErrPurchaseNotFound
}

func (f *fakePurchaseRepo) List(ctx context.Context, status string) ([]inventory.Purchase, error) {
	return nil, nil
}

func (f *fakePurchaseRepo) Approve(ctx context.Context, id string) (inventory.Purchase, error) {
	return inventory.Purchase{}, inventory.ErrPurchaseNotFound
}

func (f *fakePurchaseRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakePurchaseRepo) SumPending(ctx context.Context) (decimal.Decimal, int, error) {
	return f.pendingTotal, f.pendingCount, nil
}

type fakeTransferRepo struct {
	pendingTotal decimal.Decimal
	pendingCount int
}

func (f *fakeTransferRepo) Create(ctx context.Context, t transfer.Transfer) (transfer.Transfer, error) {
	return t, nil
}

func (f *fakeTransferRepo) GetByID(ctx context.Context, id string) (transfer.Transfer, error) {
	return transfer.Transfer{}, transfer.ErrTransferNotFound
}

func (f *fakeTransferRepo) List(ctx context.Context, month string) ([]transfer.Transfer, error) {
	return nil, nil
}

func (f *fakeTransferRepo) ExistsForMonth(ctx context.Context, empID, month string) (bool, error) {
	return false, nil
}

func (f *fakeTransferRepo) MarkPaid(ctx context.Context, id string) (transfer.Transfer, error) {
	return transfer.Transfer{}, transfer.ErrTransferNotFound
}

func (f *fakeTransferRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeTransferRepo) SumPending(ctx context.Context) (decimal.Decimal, int, error) {
	return f.pendingTotal, f.pendingCount, nil
}

type fakeContributionRepo struct {
	pendingTotal decimal.Decimal
}

func (f *fakeContributionRepo) Create(ctx context.Context, c contribution.Contribution) (contribution.Contribution, error) {
	return c, nil
}

func (f *fakeContributionRepo) GetByID(ctx context.Context, id string) (contribution.Contribution, error) {
	return contribution.Contribution{}, contribution.ErrContributionNotFound
}

func (f *fakeContributionRepo) List(ctx context.Context) ([]contribution.Contribution, error) {
	return nil, nil
}

func (f *fakeContributionRepo) MarkPaid(ctx context.Context, id string) (contribution.Contribution, error) {
	return contribution.Contribution{}, contribution.ErrContributionNotFound
}

func (f *fakeContributionRepo) SumPendingTotals(ctx context.Context) (decimal.Decimal, error) {
	return f.pendingTotal, nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestReceivables_SumsPendingTransactionValues(t *testing.T) {
	txRepo := &fakeTransactionRepo{transactions: []transaction.Transaction{
		{Status: transaction.StatusPending, Total: ptr(dec(1200))},
		{Status: transaction.StatusPending, Qty: 2, UnitPrice: dec(500)},
		{Status: transaction.StatusPaid, Total: ptr(dec(9999))},
	}}
	svc := NewFinanceService(txRepo, &fakePurchaseRepo{}, &fakeTransferRepo{}, &fakeContributionRepo{})

	got, err := svc.Receivables(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, got.Count)
	assert.True(t, got.Total.Equal(dec(2200)), "got %s", got.Total)
}

func TestPayables_CombinesPurchasesAndTransfers(t *testing.T) {
	svc := NewFinanceService(
		&fakeTransactionRepo{},
		&fakePurchaseRepo{pendingTotal: dec(3000), pendingCount: 2},
		&fakeTransferRepo{pendingTotal: dec(45000), pendingCount: 1},
		&fakeContributionRepo{},
	)

	got, err := svc.Payables(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.Count)
	assert.True(t, got.Total.Equal(dec(48000)), "got %s", got.Total)
}

func TestOverview_SkipsRefundRevenue(t *testing.T) {
	txRepo := &fakeTransactionRepo{transactions: []transaction.Transaction{
		{Status: transaction.StatusPaid, Total: ptr(dec(5000))},
		{Status: transaction.Status("refund"), Total: ptr(dec(5000))},
	}}
	svc := NewFinanceService(
		txRepo,
		&fakePurchaseRepo{},
		&fakeTransferRepo{},
		&fakeContributionRepo{pendingTotal: dec(230)},
	)

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.True(t, got.Revenue.Equal(dec(5000)), "got %s", got.Revenue)
	assert.True(t, got.PendingContributions.Equal(dec(230)))
}
