package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrMissingAttendance = apperror.New(
		apperror.CodeInvalidInput,
		"no attendance record found and no manual input provided",
		http.StatusBadRequest,
	)
	ErrInvalidAttendance = apperror.New(
		apperror.CodeInvalidInput,
		"attendance days must be between 0 and 31",
		http.StatusBadRequest,
	)
)
