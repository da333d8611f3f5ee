package response

import (
	"errors"
	"net/http"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
	"github.com/packpal/packpal-backend-go/internal/domain/contribution"
	"github.com/packpal/packpal-backend-go/internal/domain/employee"
	"github.com/packpal/packpal-backend-go/internal/domain/inventory"
	"github.com/packpal/packpal-backend-go/internal/domain/product"
	"github.com/packpal/packpal-backend-go/internal/domain/salary"
	"github.com/packpal/packpal-backend-go/internal/domain/sewing"
	"github.com/packpal/packpal-backend-go/internal/domain/transaction"
	"github.com/packpal/packpal-backend-go/internal/domain/transfer"
	"github.com/packpal/packpal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee id already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrPeriodExists):
		Conflict(w, "Attendance record already exists for this employee and period")
	case errors.Is(err, attendance.ErrEmployeeNotResolved):
		BadRequest(w, "Referenced employee does not exist", nil)

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance record not found")
	case errors.Is(err, advance.ErrPeriodExists):
		Conflict(w, "Advance record already exists for this employee and period")
	case errors.Is(err, advance.ErrEmployeeNotResolved):
		BadRequest(w, "Referenced employee does not exist", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Transfer domain errors
	case errors.Is(err, transfer.ErrTransferNotFound):
		NotFound(w, "Transfer not found")
	case errors.Is(err, transfer.ErrTransferAlreadyPaid):
		Conflict(w, "Transfer already marked as paid")
	case errors.Is(err, transfer.ErrMonthExists):
		Conflict(w, "Transfer already exists for this employee and month")

	// Contribution domain errors
	case errors.Is(err, contribution.ErrContributionNotFound):
		NotFound(w, "Contribution not found")
	case errors.Is(err, contribution.ErrPeriodExists):
		Conflict(w, "Contribution already exists for this period")
	case errors.Is(err, contribution.ErrAlreadyPaid):
		Conflict(w, "Contribution already marked as paid")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")

	// Transaction domain errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, transaction.ErrProductNotResolved):
		BadRequest(w, "Referenced product does not exist", nil)

	// Inventory domain errors
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Inventory item not found")
	case errors.Is(err, inventory.ErrItemIDExists):
		Conflict(w, "Inventory item id already exists")
	case errors.Is(err, inventory.ErrPurchaseNotFound):
		NotFound(w, "Purchase not found")
	case errors.Is(err, inventory.ErrItemNotResolved):
		BadRequest(w, "Referenced inventory item does not exist", nil)
	case errors.Is(err, inventory.ErrPurchaseNotPending):
		Conflict(w, "Purchase is not pending")

	// Sewing domain errors
	case errors.Is(err, sewing.ErrInstructionNotFound):
		NotFound(w, "Sewing instruction not found")
	case errors.Is(err, sewing.ErrInvalidTransition):
		BadRequest(w, "Invalid status transition", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
