package companyerrors

import (
	"net/http"

	"go-paydesk/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrCompanyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A company with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidMonthlyCharge = apperror.New(
		apperror.CodeInvalidInput,
		"Please enter a valid monthly charge",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Payment status must be Paid or Pending",
		http.StatusBadRequest,
	)
)
