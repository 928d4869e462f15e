package dashboard

import (
	"context"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	PayrollTotalForPeriod(ctx context.Context, month, year int) (float64, error)
	CountComplianceIssues(ctx context.Context) (int64, error)
	AttendanceTotalsSince(ctx context.Context, month, year int) ([]MonthAttendance, error)
	DepartmentDistribution(ctx context.Context) ([]DepartmentCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Count(&count).Error
	return count, err
}

func (r *repository) PayrollTotalForPeriod(ctx context.Context, month, year int) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&payroll.Payroll{}).
		Select("COALESCE(SUM(net_salary), 0)").
		Where("month = ? AND year = ?", month, year).
		Scan(&total).Error
	return total, err
}

func (r *repository) CountComplianceIssues(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where(`pan IS NULL OR pan = ''
			OR uan IS NULL OR uan = ''
			OR pf_number IS NULL OR pf_number = ''
			OR esi_number IS NULL OR esi_number = ''`).
		Count(&count).Error
	return count, err
}

// AttendanceTotalsSince aggregates present days per period from the given
// period onward, oldest first.
func (r *repository) AttendanceTotalsSince(ctx context.Context, month, year int) ([]MonthAttendance, error) {
	var rows []MonthAttendance
	err := r.db.WithContext(ctx).
		Model(&attendance.Attendance{}).
		Select("month, year, COALESCE(SUM(present_days), 0) AS total_days").
		Where("(year * 12 + month) >= ?", year*12+month).
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DepartmentDistribution(ctx context.Context) ([]DepartmentCount, error) {
	var rows []DepartmentCount
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Select("department, COUNT(*) AS count").
		Group("department").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}
