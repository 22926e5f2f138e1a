package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/document"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	documentservice "github.com/madison-jay/edike-backend/internal/service/document"
)

type DocumentHandler interface {
	CreateEmployeeDocuments(w http.ResponseWriter, r *http.Request)
	ListEmployeeDocuments(w http.ResponseWriter, r *http.Request)
	UpdateEmployeeDocument(w http.ResponseWriter, r *http.Request)
	DeleteEmployeeDocument(w http.ResponseWriter, r *http.Request)

	CreateTaskDocuments(w http.ResponseWriter, r *http.Request)
	ListTaskDocuments(w http.ResponseWriter, r *http.Request)
	UpdateTaskDocument(w http.ResponseWriter, r *http.Request)
	DeleteTaskDocument(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService *documentservice.Service
}

func NewDocumentHandler(documentService *documentservice.Service) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

func (h *documentHandlerImpl) CreateEmployeeDocuments(w http.ResponseWriter, r *http.Request) {
	var req document.CreateEmployeeDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	results, err := h.documentService.CreateEmployeeDocuments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Documents created", results)
}

func (h *documentHandlerImpl) ListEmployeeDocuments(w http.ResponseWriter, r *http.Request) {
	results, err := h.documentService.ListEmployeeDocuments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *documentHandlerImpl) UpdateEmployeeDocument(w http.ResponseWriter, r *http.Request) {
	var req document.UpdateEmployeeDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.documentService.UpdateEmployeeDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *documentHandlerImpl) DeleteEmployeeDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.DeleteEmployeeDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Document deleted", nil)
}

func (h *documentHandlerImpl) CreateTaskDocuments(w http.ResponseWriter, r *http.Request) {
	var req document.CreateTaskDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TaskID = chi.URLParam(r, "id")

	results, err := h.documentService.CreateTaskDocuments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Documents created", results)
}

func (h *documentHandlerImpl) ListTaskDocuments(w http.ResponseWriter, r *http.Request) {
	results, err := h.documentService.ListTaskDocuments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *documentHandlerImpl) UpdateTaskDocument(w http.ResponseWriter, r *http.Request) {
	var req document.UpdateTaskDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.documentService.UpdateTaskDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *documentHandlerImpl) DeleteTaskDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.DeleteTaskDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Document deleted", nil)
}
