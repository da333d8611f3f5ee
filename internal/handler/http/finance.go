package http

import (
	"net/http"

	"github.com/packpal/packpal-backend-go/internal/domain/finance"
	"github.com/packpal/packpal-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	Receivables(w http.ResponseWriter, r *http.Request)
	Payables(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

func (h *financeHandlerImpl) Receivables(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.Receivables(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *financeHandlerImpl) Payables(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.Payables(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *financeHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
