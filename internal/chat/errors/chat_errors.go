package chaterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrMessageRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Message is required",
		http.StatusBadRequest,
	)
	ErrNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Server configuration error: API Key missing",
		http.StatusInternalServerError,
	)
	ErrUpstreamFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"assistant request failed",
		http.StatusInternalServerError,
	)
)
