package company

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The singleton lives in slot 1; Upsert is an insert-or-update keyed on the
// slot so concurrent first-time saves cannot create two companies.
const singletonSlot = 1

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context) (*Company, error)
	Upsert(ctx context.Context, company *Company) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).
		First(&company, "slot = ?", singletonSlot).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) Upsert(ctx context.Context, company *Company) error {
	company.Slot = singletonSlot
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address",
				"gst_number", "pan_number", "tan_number",
				"pf_code", "esi_code", "pt_circle",
				"updated_at",
			}),
		}).
		Create(company).Error
}
