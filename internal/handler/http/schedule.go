package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/schedule"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	scheduleservice "github.com/madison-jay/edike-backend/internal/service/schedule"
)

type ScheduleHandler interface {
	CreateShiftType(w http.ResponseWriter, r *http.Request)
	GetShiftType(w http.ResponseWriter, r *http.Request)
	ListShiftTypes(w http.ResponseWriter, r *http.Request)
	UpdateShiftType(w http.ResponseWriter, r *http.Request)
	DeleteShiftType(w http.ResponseWriter, r *http.Request)

	CreateShiftSchedule(w http.ResponseWriter, r *http.Request)
	GetShiftSchedule(w http.ResponseWriter, r *http.Request)
	ListShiftSchedules(w http.ResponseWriter, r *http.Request)
	UpdateShiftSchedule(w http.ResponseWriter, r *http.Request)
	DeleteShiftSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService *scheduleservice.Service
}

func NewScheduleHandler(scheduleService *scheduleservice.Service) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) CreateShiftType(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.CreateShiftType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift type created", result)
}

func (h *scheduleHandlerImpl) GetShiftType(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetShiftType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) ListShiftTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.scheduleService.ListShiftTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *scheduleHandlerImpl) UpdateShiftType(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateShiftType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) DeleteShiftType(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteShiftType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift type deleted", nil)
}

func (h *scheduleHandlerImpl) CreateShiftSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateShiftScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.CreateShiftSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift schedule created", result)
}

func (h *scheduleHandlerImpl) GetShiftSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetShiftSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) ListShiftSchedules(w http.ResponseWriter, r *http.Request) {
	results, err := h.scheduleService.ListShiftSchedules(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *scheduleHandlerImpl) UpdateShiftSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateShiftScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateShiftSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *scheduleHandlerImpl) DeleteShiftSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteShiftSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift schedule deleted", nil)
}
