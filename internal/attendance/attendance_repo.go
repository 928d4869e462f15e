package attendance

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, row *Attendance) error
	Update(ctx context.Context, row *Attendance) error
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds every operation on the returned repository to the given
// transaction handle.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) Update(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Attendance, error) {
	var row Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("year DESC, month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&rows).Error
	return rows, err
}
