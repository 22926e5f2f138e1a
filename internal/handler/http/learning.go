package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/learning"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	learningservice "github.com/madison-jay/edike-backend/internal/service/learning"
)

type LearningHandler interface {
	CreateModule(w http.ResponseWriter, r *http.Request)
	GetModule(w http.ResponseWriter, r *http.Request)
	ListModules(w http.ResponseWriter, r *http.Request)
	UpdateModule(w http.ResponseWriter, r *http.Request)
	DeleteModule(w http.ResponseWriter, r *http.Request)

	CreateLesson(w http.ResponseWriter, r *http.Request)
	GetLesson(w http.ResponseWriter, r *http.Request)
	ListLessons(w http.ResponseWriter, r *http.Request)
	UpdateLesson(w http.ResponseWriter, r *http.Request)
	DeleteLesson(w http.ResponseWriter, r *http.Request)

	CreateQuestion(w http.ResponseWriter, r *http.Request)
	GetQuestion(w http.ResponseWriter, r *http.Request)
	ListQuestions(w http.ResponseWriter, r *http.Request)
	UpdateQuestion(w http.ResponseWriter, r *http.Request)
	DeleteQuestion(w http.ResponseWriter, r *http.Request)
}

type learningHandlerImpl struct {
	learningService *learningservice.Service
}

func NewLearningHandler(learningService *learningservice.Service) LearningHandler {
	return &learningHandlerImpl{learningService: learningService}
}

func (h *learningHandlerImpl) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req learning.CreateModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.learningService.CreateModule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Module created", result)
}

func (h *learningHandlerImpl) GetModule(w http.ResponseWriter, r *http.Request) {
	result, err := h.learningService.GetModule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *learningHandlerImpl) ListModules(w http.ResponseWriter, r *http.Request) {
	results, err := h.learningService.ListModules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *learningHandlerImpl) UpdateModule(w http.ResponseWriter, r *http.Request) {
	var req learning.UpdateModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.learningService.UpdateModule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *learningHandlerImpl) DeleteModule(w http.ResponseWriter, r *http.Request) {
	if err := h.learningService.DeleteModule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Module deleted", nil)
}

func (h *learningHandlerImpl) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req learning.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ModuleID = chi.URLParam(r, "moduleID")

	result, err := h.learningService.CreateLesson(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Lesson created", result)
}

func (h *learningHandlerImpl) GetLesson(w http.ResponseWriter, r *http.Request) {
	result, err := h.learningService.GetLesson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *learningHandlerImpl) ListLessons(w http.ResponseWriter, r *http.Request) {
	results, err := h.learningService.ListLessons(r.Context(), chi.URLParam(r, "moduleID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *learningHandlerImpl) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	var req learning.UpdateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.learningService.UpdateLesson(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *learningHandlerImpl) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	if err := h.learningService.DeleteLesson(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Lesson deleted", nil)
}

func (h *learningHandlerImpl) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req learning.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.LessonID = chi.URLParam(r, "lessonID")

	result, err := h.learningService.CreateQuestion(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Question created", result)
}

func (h *learningHandlerImpl) GetQuestion(w http.ResponseWriter, r *http.Request) {
	result, err := h.learningService.GetQuestion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *learningHandlerImpl) ListQuestions(w http.ResponseWriter, r *http.Request) {
	results, err := h.learningService.ListQuestions(r.Context(), chi.URLParam(r, "lessonID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *learningHandlerImpl) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req learning.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.learningService.UpdateQuestion(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *learningHandlerImpl) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.learningService.DeleteQuestion(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Question deleted", nil)
}
