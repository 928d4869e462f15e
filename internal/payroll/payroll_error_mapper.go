package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates driver-level failures. The unique index on
// (employee_id, month, year) is the real duplicate guard: even if two
// requests pass the existence check concurrently, only one insert survives
// and the loser surfaces as ErrDuplicatePayroll.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payroll_period" {
			return payrollerrors.ErrDuplicatePayroll
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payroll_period") {
		return payrollerrors.ErrDuplicatePayroll
	}

	return err
}
