package http

import (
	"net/http"

	"github.com/packpal/packpal-backend-go/internal/domain/salary"
	"github.com/packpal/packpal-backend-go/internal/handler/http/response"
	"github.com/packpal/packpal-backend-go/internal/pkg/period"
)

type SalaryHandler interface {
	Calc(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func (h *salaryHandlerImpl) Calc(w http.ResponseWriter, r *http.Request) {
	empID := r.URL.Query().Get("empId")
	if empID == "" {
		response.BadRequest(w, "empId is required", nil)
		return
	}
	periodKey := r.URL.Query().Get("period")
	if periodKey == "" {
		periodKey = period.Current()
	}
	if !period.IsValid(periodKey) {
		response.BadRequest(w, "period must be YYYY-MM", nil)
		return
	}

	result, err := h.salaryService.Calc(r.Context(), empID, periodKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salaryHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	periodKey := r.URL.Query().Get("period")
	if periodKey == "" {
		periodKey = period.Current()
	}
	if !period.IsValid(periodKey) {
		response.BadRequest(w, "period must be YYYY-MM", nil)
		return
	}

	result, err := h.salaryService.Summary(r.Context(), periodKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
