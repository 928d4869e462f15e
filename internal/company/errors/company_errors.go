package companyerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var ErrCompanyNotConfigured = apperror.New(
	apperror.CodeNotFound,
	"company details have not been configured yet",
	http.StatusNotFound,
)
