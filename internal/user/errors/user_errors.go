package usererrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"employee already has a user account",
		http.StatusConflict,
	)
	ErrEmployeeLinkRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee accounts must be linked to an employee record",
		http.StatusBadRequest,
	)
)
