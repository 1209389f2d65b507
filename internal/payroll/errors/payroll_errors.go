package payrollerrors

import (
	"net/http"

	"go-paydesk/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll entry not found",
		http.StatusNotFound,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll entry ID",
		http.StatusBadRequest,
	)
	ErrInvalidPartition = apperror.New(
		apperror.CodeInvalidInput,
		"Partition must be Weekly, Monthly or Per Delivery",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusBadRequest,
	)
	ErrAdvanceExceedsCalculated = apperror.New(
		apperror.CodeInvalidInput,
		"advance deduction cannot exceed the calculated amount",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amounts must not be negative",
		http.StatusBadRequest,
	)
)
