package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/inventory"
	"github.com/packpal/packpal-backend-go/internal/handler/http/response"
)

type InventoryHandler interface {
	CreateItem(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)

	CreatePurchase(w http.ResponseWriter, r *http.Request)
	GetPurchase(w http.ResponseWriter, r *http.Request)
	ListPurchases(w http.ResponseWriter, r *http.Request)
	ApprovePurchase(w http.ResponseWriter, r *http.Request)
	DeletePurchase(w http.ResponseWriter, r *http.Request)
	PurchaseSummary(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandlerImpl{inventoryService: inventoryService}
}

func (h *inventoryHandlerImpl) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.inventoryService.CreateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Inventory item created", result)
}

func (h *inventoryHandlerImpl) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	result, err := h.inventoryService.GetItem(r.Context(), itemID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.ListItems(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	var req inventory.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ItemID = itemID

	result, err := h.inventoryService.UpdateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	if err := h.inventoryService.DeleteItem(r.Context(), itemID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Inventory item deleted", nil)
}

func (h *inventoryHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.inventoryService.CreatePurchase(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Purchase created", result)
}

func (h *inventoryHandlerImpl) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Purchase ID is required", nil)
		return
	}

	result, err := h.inventoryService.GetPurchase(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) ListPurchases(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	results, err := h.inventoryService.ListPurchases(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) ApprovePurchase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Purchase ID is required", nil)
		return
	}

	result, err := h.inventoryService.ApprovePurchase(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Purchase approved", result)
}

func (h *inventoryHandlerImpl) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Purchase ID is required", nil)
		return
	}

	if err := h.inventoryService.DeletePurchase(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Purchase deleted", nil)
}

func (h *inventoryHandlerImpl) PurchaseSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.PurchaseSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
