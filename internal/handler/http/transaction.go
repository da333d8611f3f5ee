package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/transaction"
	"github.com/packpal/packpal-backend-go/internal/handler/http/response"
)

type TransactionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Revenue(w http.ResponseWriter, r *http.Request)
	MonthlyRevenue(w http.ResponseWriter, r *http.Request)
}

type transactionHandlerImpl struct {
	transactionService transaction.TransactionService
}

func NewTransactionHandler(transactionService transaction.TransactionService) TransactionHandler {
	return &transactionHandlerImpl{transactionService: transactionService}
}

func (h *transactionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req transaction.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.transactionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Transaction created", result)
}

func (h *transactionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transaction ID is required", nil)
		return
	}

	result, err := h.transactionService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *transactionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	results, err := h.transactionService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *transactionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transaction ID is required", nil)
		return
	}

	var req transaction.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.transactionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *transactionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transaction ID is required", nil)
		return
	}

	if err := h.transactionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Transaction deleted", nil)
}

func (h *transactionHandlerImpl) Revenue(w http.ResponseWriter, r *http.Request) {
	var window transaction.RevenueWindow
	if from := r.URL.Query().Get("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return
		}
		window.From = d
	}
	if to := r.URL.Query().Get("to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return
		}
		// Inclusive end date.
		window.To = d.AddDate(0, 0, 1)
	}

	result, err := h.transactionService.Revenue(r.Context(), window)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *transactionHandlerImpl) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	months := 12
	if m := r.URL.Query().Get("months"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "months must be a positive integer", nil)
			return
		}
		months = parsed
	}

	result, err := h.transactionService.MonthlyRevenue(r.Context(), months)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
