package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/report"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	reportservice "github.com/madison-jay/edike-backend/internal/service/report"
)

type ReportHandler interface {
	AttendanceMatrix(w http.ResponseWriter, r *http.Request)
	PayrollRegister(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportservice.Service
}

func NewReportHandler(reportService *reportservice.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// AttendanceMatrix serves JSON by default and a spreadsheet when
// ?format=xlsx.
func (h *reportHandlerImpl) AttendanceMatrix(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month: int(time.Now().Month()),
		Year:  time.Now().Year(),
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			req.Month = parsed
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			req.Year = parsed
		}
	}

	if r.URL.Query().Get("format") == "xlsx" {
		data, err := h.reportService.AttendanceMatrixXLSX(r.Context(), req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		serveXLSX(w, fmt.Sprintf("attendance_%04d-%02d.xlsx", req.Year, req.Month), data)
		return
	}

	result, err := h.reportService.AttendanceMatrix(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) PayrollRegister(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = time.Now().UTC().Format("2006-01")
	}

	if r.URL.Query().Get("format") == "xlsx" {
		data, err := h.reportService.PayrollRegisterXLSX(r.Context(), period)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		serveXLSX(w, fmt.Sprintf("payroll_%s.xlsx", period), data)
		return
	}

	result, err := h.reportService.PayrollRegister(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func serveXLSX(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
