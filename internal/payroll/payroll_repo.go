package payroll

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("year DESC, month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Payroll{}, "id = ?", id).Error
}
