package employeeerrors

import (
	"net/http"

	"go-paydesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentType = apperror.New(
		apperror.CodeInvalidInput,
		"Payment type must be Weekly, Monthly or Per Delivery",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryRate = apperror.New(
		apperror.CodeInvalidInput,
		"Salary rate must be a positive amount",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Active, Inactive or On Leave",
		http.StatusBadRequest,
	)
)
