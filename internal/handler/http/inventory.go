package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/inventory"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	inventoryservice "github.com/madison-jay/edike-backend/internal/service/inventory"
)

type InventoryHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)

	CreateComponent(w http.ResponseWriter, r *http.Request)
	GetComponent(w http.ResponseWriter, r *http.Request)
	ListComponents(w http.ResponseWriter, r *http.Request)
	UpdateComponent(w http.ResponseWriter, r *http.Request)
	DeleteComponent(w http.ResponseWriter, r *http.Request)

	CreateSupplier(w http.ResponseWriter, r *http.Request)
	GetSupplier(w http.ResponseWriter, r *http.Request)
	ListSuppliers(w http.ResponseWriter, r *http.Request)
	UpdateSupplier(w http.ResponseWriter, r *http.Request)
	DeleteSupplier(w http.ResponseWriter, r *http.Request)

	CreateImportBatch(w http.ResponseWriter, r *http.Request)
	GetImportBatch(w http.ResponseWriter, r *http.Request)
	ListImportBatches(w http.ResponseWriter, r *http.Request)
	UpdateImportBatch(w http.ResponseWriter, r *http.Request)
	DeleteImportBatch(w http.ResponseWriter, r *http.Request)
	ListBoxesByBatch(w http.ResponseWriter, r *http.Request)

	AddNewStock(w http.ResponseWriter, r *http.Request)
	SellStock(w http.ResponseWriter, r *http.Request)
	StockOverview(w http.ResponseWriter, r *http.Request)
	GetBoxByBarcode(w http.ResponseWriter, r *http.Request)
	UpdateBoxStatus(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService *inventoryservice.Service
}

func NewInventoryHandler(inventoryService *inventoryservice.Service) InventoryHandler {
	return &inventoryHandlerImpl{inventoryService: inventoryService}
}

func (h *inventoryHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.CreateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Product created", result)
}

func (h *inventoryHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.ListProducts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.inventoryService.UpdateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Product deleted", nil)
}

func (h *inventoryHandlerImpl) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.CreateComponent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Component created", result)
}

func (h *inventoryHandlerImpl) GetComponent(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetComponent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) ListComponents(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.ListComponents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.inventoryService.UpdateComponent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteComponent(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Component deleted", nil)
}

func (h *inventoryHandlerImpl) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.CreateSupplier(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Supplier created", result)
}

func (h *inventoryHandlerImpl) GetSupplier(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.ListSuppliers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.inventoryService.UpdateSupplier(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Supplier deleted", nil)
}

func (h *inventoryHandlerImpl) CreateImportBatch(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateImportBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.CreateImportBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Import batch created", result)
}

func (h *inventoryHandlerImpl) GetImportBatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetImportBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) ListImportBatches(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.ListImportBatches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) UpdateImportBatch(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdateImportBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.inventoryService.UpdateImportBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) DeleteImportBatch(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteImportBatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Import batch deleted", nil)
}

func (h *inventoryHandlerImpl) ListBoxesByBatch(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.ListBoxesByBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) AddNewStock(w http.ResponseWriter, r *http.Request) {
	var req inventory.AddStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.AddNewStock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Stock added", result)
}

func (h *inventoryHandlerImpl) SellStock(w http.ResponseWriter, r *http.Request) {
	var req inventory.SellStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.SellStock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) StockOverview(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.StockOverview(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) UpdateBoxStatus(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdateBoxStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.inventoryService.UpdateBoxStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) GetBoxByBarcode(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetBoxByBarcode(r.Context(), chi.URLParam(r, "barcode"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *inventoryHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	results, err := h.inventoryService.ListTransactions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *inventoryHandlerImpl) GetTransaction(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.GetTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
