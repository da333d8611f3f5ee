package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/handler/http/response"
	"github.com/packpal/packpal-backend-go/internal/pkg/period"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Compute(w http.ResponseWriter, r *http.Request)
	Lookup(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

func (h *advanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Advance record created", result)
}

func (h *advanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.advanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *advanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	empID := r.URL.Query().Get("empId")

	results, err := h.advanceService.List(r.Context(), empID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *advanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req advance.UpdateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.advanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *advanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.advanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Advance record deleted", nil)
}

func (h *advanceHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req advance.ComputeAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Advance breakdown computed", result)
}

func (h *advanceHandlerImpl) Lookup(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.advanceService.Lookup(r.Context(), empID, periodKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
