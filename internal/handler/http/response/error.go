package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/madison-jay/edike-backend/internal/domain/attendance"
	"github.com/madison-jay/edike-backend/internal/domain/document"
	"github.com/madison-jay/edike-backend/internal/domain/employee"
	"github.com/madison-jay/edike-backend/internal/domain/inventory"
	"github.com/madison-jay/edike-backend/internal/domain/kpi"
	"github.com/madison-jay/edike-backend/internal/domain/learning"
	"github.com/madison-jay/edike-backend/internal/domain/leave"
	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/domain/report"
	"github.com/madison-jay/edike-backend/internal/domain/sales"
	"github.com/madison-jay/edike-backend/internal/domain/schedule"
	"github.com/madison-jay/edike-backend/internal/domain/task"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

// HandleError maps domain errors onto HTTP responses. Unknown errors are
// logged and answered with a generic 500 so internals never leak.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity
	case errors.Is(err, user.ErrIdentityMissing), errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrPermissionRequired):
		Forbidden(w, "Insufficient permissions")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrFieldNotAllowed):
		Forbidden(w, "Field not allowed for your role")
	case errors.Is(err, employee.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Documents
	case errors.Is(err, document.ErrEmployeeDocumentNotFound):
		NotFound(w, "Employee document not found")
	case errors.Is(err, document.ErrTaskDocumentNotFound):
		NotFound(w, "Task document not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		BadRequest(w, "Leave request already processed", nil)
	case errors.Is(err, leave.ErrCannotDecideOwn):
		Forbidden(w, "Cannot approve or reject your own leave request")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the requesting employee may act on this request")

	// Payroll
	case errors.Is(err, payroll.ErrSalaryComponentNotFound):
		NotFound(w, "Salary component not found")
	case errors.Is(err, payroll.ErrDefaultChargeNotFound):
		NotFound(w, "Default charge not found")
	case errors.Is(err, payroll.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, payroll.ErrPaymentNotFound):
		NotFound(w, "Payment record not found")
	case errors.Is(err, payroll.ErrPendingDeductionExists):
		Conflict(w, "A pending deduction for this charge already exists")
	case errors.Is(err, payroll.ErrNoCompensationData):
		BadRequest(w, "No salary components or deductions found for employee", nil)
	case errors.Is(err, payroll.ErrDuplicatePeriod):
		Conflict(w, "A payment for this employee and period already exists")

	// Attendance
	case errors.Is(err, attendance.ErrTransactionNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Schedules
	case errors.Is(err, schedule.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")
	case errors.Is(err, schedule.ErrShiftScheduleNotFound):
		NotFound(w, "Shift schedule not found")
	case errors.Is(err, schedule.ErrOverlappingSchedule):
		Conflict(w, "An overlapping shift schedule exists for this employee")

	// Tasks
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// KPI
	case errors.Is(err, kpi.ErrTemplateNotFound):
		NotFound(w, "KPI template not found")
	case errors.Is(err, kpi.ErrAssignmentNotFound):
		NotFound(w, "KPI assignment not found")
	case errors.Is(err, kpi.ErrInvalidTransition):
		BadRequest(w, "Status transition not allowed", nil)
	case errors.Is(err, kpi.ErrNotAssignmentOwner):
		Forbidden(w, "KPI assignment belongs to another employee")
	case errors.Is(err, kpi.ErrCannotReviewOwn):
		Forbidden(w, "Cannot review your own KPI assignment")
	case errors.Is(err, kpi.ErrInvalidTargetValue):
		BadRequest(w, "Value does not match the template's target type", nil)
	case errors.Is(err, kpi.ErrMissingSubmission):
		BadRequest(w, "Assignment has no submitted value", nil)

	// Learning
	case errors.Is(err, learning.ErrModuleNotFound):
		NotFound(w, "Learning module not found")
	case errors.Is(err, learning.ErrLessonNotFound):
		NotFound(w, "Lesson not found")
	case errors.Is(err, learning.ErrQuestionNotFound):
		NotFound(w, "Question not found")

	// Inventory
	case errors.Is(err, inventory.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, inventory.ErrComponentNotFound):
		NotFound(w, "Component not found")
	case errors.Is(err, inventory.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")
	case errors.Is(err, inventory.ErrBatchNotFound):
		NotFound(w, "Import batch not found")
	case errors.Is(err, inventory.ErrBoxNotFound):
		NotFound(w, "Box not found")
	case errors.Is(err, inventory.ErrTransactionNotFound):
		NotFound(w, "Stock transaction not found")
	case errors.Is(err, inventory.ErrSKUExists):
		Conflict(w, "SKU already exists")
	case errors.Is(err, inventory.ErrBatchNumberExists):
		Conflict(w, "Batch number already exists")
	case errors.Is(err, inventory.ErrBarcodeExists):
		Conflict(w, "Barcode already exists")
	case errors.Is(err, inventory.ErrBoxNotInStock):
		BadRequest(w, "Box is not in stock", nil)
	case errors.Is(err, inventory.ErrInsufficientBoxQuantity):
		BadRequest(w, "Requested quantity exceeds box quantity", nil)
	case errors.Is(err, inventory.ErrBoxCountMismatch):
		BadRequest(w, "Created box count does not match requested count", nil)
	case errors.Is(err, inventory.ErrBoxSold):
		BadRequest(w, "Sold boxes cannot change status", nil)

	// Sales
	case errors.Is(err, sales.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, sales.ErrOrderNotFound):
		NotFound(w, "Order not found")

	// Reports
	case errors.Is(err, report.ErrExportFailed):
		InternalServerError(w, "Report export failed")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
