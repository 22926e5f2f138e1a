package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/handler/http/response"
	payrollservice "github.com/madison-jay/edike-backend/internal/service/payroll"
)

type PayrollHandler interface {
	GeneratePayment(w http.ResponseWriter, r *http.Request)
	GenerateAll(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)

	CreateSalaryComponent(w http.ResponseWriter, r *http.Request)
	GetSalaryComponent(w http.ResponseWriter, r *http.Request)
	ListSalaryComponents(w http.ResponseWriter, r *http.Request)
	UpdateSalaryComponent(w http.ResponseWriter, r *http.Request)
	DeleteSalaryComponent(w http.ResponseWriter, r *http.Request)

	CreateDefaultCharge(w http.ResponseWriter, r *http.Request)
	GetDefaultCharge(w http.ResponseWriter, r *http.Request)
	ListDefaultCharges(w http.ResponseWriter, r *http.Request)
	UpdateDefaultCharge(w http.ResponseWriter, r *http.Request)
	DeleteDefaultCharge(w http.ResponseWriter, r *http.Request)

	CreateDeduction(w http.ResponseWriter, r *http.Request)
	GetDeduction(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
	UpdateDeduction(w http.ResponseWriter, r *http.Request)
	DeleteDeduction(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollservice.Service
}

func NewPayrollHandler(payrollService *payrollservice.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GeneratePayment(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GeneratePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payment settled", result)
}

func (h *payrollHandlerImpl) GenerateAll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateAllPaymentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.payrollService.GenerateAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *payrollHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	period := r.URL.Query().Get("period")

	result, err := h.payrollService.GetPayment(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.ListPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *payrollHandlerImpl) CreateSalaryComponent(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreateSalaryComponent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Salary component created", result)
}

func (h *payrollHandlerImpl) GetSalaryComponent(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSalaryComponent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListSalaryComponents(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	results, err := h.payrollService.ListSalaryComponents(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *payrollHandlerImpl) UpdateSalaryComponent(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSalaryComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.payrollService.UpdateSalaryComponent(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetSalaryComponent(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeleteSalaryComponent(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteSalaryComponent(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary component deleted", nil)
}

func (h *payrollHandlerImpl) CreateDefaultCharge(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateDefaultChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreateDefaultCharge(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Default charge created", result)
}

func (h *payrollHandlerImpl) GetDefaultCharge(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetDefaultCharge(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListDefaultCharges(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.ListDefaultCharges(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *payrollHandlerImpl) UpdateDefaultCharge(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateDefaultChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.payrollService.UpdateDefaultCharge(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetDefaultCharge(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeleteDefaultCharge(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteDefaultCharge(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Default charge deleted", nil)
}

func (h *payrollHandlerImpl) CreateDeduction(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreateDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Deduction created", result)
}

func (h *payrollHandlerImpl) GetDeduction(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetDeduction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	results, err := h.payrollService.ListDeductions(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *payrollHandlerImpl) UpdateDeduction(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.payrollService.UpdateDeduction(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetDeduction(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeleteDeduction(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteDeduction(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Deduction deleted", nil)
}
