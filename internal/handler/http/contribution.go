package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/contribution"
	"github.com/packpal/packpal-backend-go/internal/handler/http/response"
)

type ContributionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type contributionHandlerImpl struct {
	contributionService contribution.ContributionService
}

func NewContributionHandler(contributionService contribution.ContributionService) ContributionHandler {
	return &contributionHandlerImpl{contributionService: contributionService}
}

func (h *contributionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contribution.CreateContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.contributionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Contribution created", result)
}

func (h *contributionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.contributionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *contributionHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Contribution ID is required", nil)
		return
	}

	result, err := h.contributionService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contribution marked as paid", result)
}
