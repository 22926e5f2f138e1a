package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/task"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	taskservice "github.com/madison-jay/edike-backend/internal/service/task"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService *taskservice.Service
}

func NewTaskHandler(taskService *taskservice.Service) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task created", result)
}

func (h *taskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.taskService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.taskService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task deleted", nil)
}
