package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/kpi"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	kpiservice "github.com/madison-jay/edike-backend/internal/service/kpi"
)

type KPIHandler interface {
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	GetTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)

	CreateAssignment(w http.ResponseWriter, r *http.Request)
	GetAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	StartAssignment(w http.ResponseWriter, r *http.Request)
	SubmitAssignment(w http.ResponseWriter, r *http.Request)
	ReviewAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type kpiHandlerImpl struct {
	kpiService *kpiservice.Service
}

func NewKPIHandler(kpiService *kpiservice.Service) KPIHandler {
	return &kpiHandlerImpl{kpiService: kpiService}
}

func (h *kpiHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kpiService.CreateTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "KPI template created", result)
}

func (h *kpiHandlerImpl) GetTemplate(w http.ResponseWriter, r *http.Request) {
	result, err := h.kpiService.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *kpiHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	results, err := h.kpiService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *kpiHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req kpi.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.kpiService.UpdateTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *kpiHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.kpiService.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "KPI template deleted", nil)
}

func (h *kpiHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kpiService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "KPI assignment created", result)
}

func (h *kpiHandlerImpl) GetAssignment(w http.ResponseWriter, r *http.Request) {
	result, err := h.kpiService.GetAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *kpiHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	results, err := h.kpiService.ListAssignments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *kpiHandlerImpl) StartAssignment(w http.ResponseWriter, r *http.Request) {
	result, err := h.kpiService.StartAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *kpiHandlerImpl) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	var req kpi.SubmitAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.kpiService.SubmitAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *kpiHandlerImpl) ReviewAssignment(w http.ResponseWriter, r *http.Request) {
	var req kpi.ReviewAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.kpiService.ReviewAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *kpiHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.kpiService.DeleteAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "KPI assignment deleted", nil)
}
