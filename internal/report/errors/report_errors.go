package reporterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidReportType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid report type",
		http.StatusBadRequest,
	)
	ErrNoEmployeeForUser = apperror.New(
		apperror.CodeNotFound,
		"no employee record available for this report",
		http.StatusNotFound,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"report rendering failed",
		http.StatusInternalServerError,
	)
)
