package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/transfer"
	"github.com/packpal/packpal-backend-go/internal/handler/http/response"
)

type TransferHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
}

type transferHandlerImpl struct {
	transferService transfer.TransferService
}

func NewTransferHandler(transferService transfer.TransferService) TransferHandler {
	return &transferHandlerImpl{transferService: transferService}
}

func (h *transferHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req transfer.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.transferService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Transfer created", result)
}

func (h *transferHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	result, err := h.transferService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *transferHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	results, err := h.transferService.List(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *transferHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	result, err := h.transferService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Transfer marked as paid", result)
}

func (h *transferHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	if err := h.transferService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Transfer deleted", nil)
}

func (h *transferHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req transfer.GenerateTransfersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.transferService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Transfers generated", result)
}
