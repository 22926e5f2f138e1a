package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/sales"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	salesservice "github.com/madison-jay/edike-backend/internal/service/sales"
)

type SalesHandler interface {
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
	ListCustomers(w http.ResponseWriter, r *http.Request)
	UpdateCustomer(w http.ResponseWriter, r *http.Request)
	DeleteCustomer(w http.ResponseWriter, r *http.Request)

	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
}

type salesHandlerImpl struct {
	salesService *salesservice.Service
}

func NewSalesHandler(salesService *salesservice.Service) SalesHandler {
	return &salesHandlerImpl{salesService: salesService}
}

func (h *salesHandlerImpl) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req sales.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salesService.CreateCustomer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Customer created", result)
}

func (h *salesHandlerImpl) GetCustomer(w http.ResponseWriter, r *http.Request) {
	result, err := h.salesService.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salesHandlerImpl) ListCustomers(w http.ResponseWriter, r *http.Request) {
	results, err := h.salesService.ListCustomers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *salesHandlerImpl) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req sales.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.salesService.UpdateCustomer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salesHandlerImpl) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.salesService.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Customer deleted", nil)
}

func (h *salesHandlerImpl) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req sales.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salesService.CreateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Order created", result)
}

func (h *salesHandlerImpl) GetOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.salesService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salesHandlerImpl) ListOrders(w http.ResponseWriter, r *http.Request) {
	results, err := h.salesService.ListOrders(r.Context(), r.URL.Query().Get("customer_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *salesHandlerImpl) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req sales.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.salesService.UpdateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salesHandlerImpl) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.salesService.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Order deleted", nil)
}
