package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is a singleton: every row carries slot = 1 and the unique index
// makes a second row impossible, so "the company" is always well defined.
type Company struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slot int       `gorm:"type:smallint;not null;default:1;uniqueIndex:uq_company_slot"`

	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:text"`

	GSTNumber string `gorm:"column:gst_number;type:varchar(20)"`
	PANNumber string `gorm:"column:pan_number;type:varchar(20)"`
	TANNumber string `gorm:"column:tan_number;type:varchar(20)"`
	PFCode    string `gorm:"column:pf_code;type:varchar(30)"`
	ESICode   string `gorm:"column:esi_code;type:varchar(30)"`
	PTCircle  string `gorm:"column:pt_circle;type:varchar(50)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Company) TableName() string {
	return "companies"
}
