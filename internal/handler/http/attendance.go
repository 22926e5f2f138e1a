package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/attendance"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	attendanceservice "github.com/madison-jay/edike-backend/internal/service/attendance"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	var req attendance.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.attendanceService.Sync(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// ListByEmployee reads from/to query params, defaulting to the current
// month.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid 'from' date", nil)
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid 'to' date", nil)
			return
		}
		to = parsed
	}
	if to.Before(from) {
		response.HandleError(w, attendance.ErrInvalidDateRange)
		return
	}

	results, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().UTC().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "Invalid 'date' value", nil)
		return
	}

	results, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}
