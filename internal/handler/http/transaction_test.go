package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal-backend-go/internal/domain/finance"
	"github.com/packpal/packpal-backend-go/internal/domain/transaction"
)

type stubTransactionService struct {
	revenueResp transaction.RevenueResponse
	monthlyResp finance.MonthlySeriesResponse
	err         error

	lastWindow transaction.RevenueWindow
	lastMonths int
}

func (s *stubTransactionService) Create(ctx context.Context, req transaction.CreateTransactionRequest) (transaction.TransactionResponse, error) {
	return transaction.TransactionResponse{}, s.err
}

func (s *stubTransactionService) Get(ctx context.Context, id string) (transaction.TransactionResponse, error) {
	return transaction.TransactionResponse{}, s.err
}

func (s *stubTransactionService) List(ctx context.Context, status string) ([]transaction.TransactionResponse, error) {
	return nil, s.err
}

func (s *stubTransactionService) Update(ctx context.Context, req transaction.UpdateTransactionRequest) (transaction.TransactionResponse, error) {
	return transaction.TransactionResponse{}, s.err
}

func (s *stubTransactionService) Delete(ctx context.Context, id string) error {
	return s.err
}

func (s *stubTransactionService) Revenue(ctx context.Context, window transaction.RevenueWindow) (transaction.RevenueResponse, error) {
	s.lastWindow = window
	return s.revenueResp, s.err
}

func (s *stubTransactionService) MonthlyRevenue(ctx context.Context, months int) (finance.MonthlySeriesResponse, error) {
	s.lastMonths = months
	return s.monthlyResp, s.err
}

func TestTransactionHandler_Revenue_Success(t *testing.T) {
	stub := &stubTransactionService{
		revenueResp: transaction.RevenueResponse{Total: decimal.NewFromInt(4500), Count: 3},
	}
	handler := NewTransactionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/transactions/revenue?from=2025-01-01&to=2025-06-30", nil)
	rec := httptest.NewRecorder()
	handler.Revenue(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, stub.lastWindow.From.Year())
	// "to" is inclusive; the window upper bound is the following day.
	assert.Equal(t, 1, stub.lastWindow.To.Day())

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Total decimal.Decimal `json:"total"`
			Count int             `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Data.Count)
	assert.True(t, body.Data.Total.Equal(decimal.NewFromInt(4500)))
}

func TestTransactionHandler_Revenue_BadDate(t *testing.T) {
	handler := NewTransactionHandler(&stubTransactionService{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/revenue?from=not-a-date", nil)
	rec := httptest.NewRecorder()
	handler.Revenue(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionHandler_MonthlyRevenue_DefaultsToTwelve(t *testing.T) {
	stub := &stubTransactionService{}
	handler := NewTransactionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/transactions/revenue/monthly", nil)
	rec := httptest.NewRecorder()
	handler.MonthlyRevenue(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, stub.lastMonths)
}

func TestTransactionHandler_MonthlyRevenue_RejectsNonPositive(t *testing.T) {
	handler := NewTransactionHandler(&stubTransactionService{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/revenue/monthly?months=0", nil)
	rec := httptest.NewRecorder()
	handler.MonthlyRevenue(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
