package payroll

import (
	"time"

	"github.com/google/uuid"
)

type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_period"`
	Month      int       `gorm:"type:smallint;not null;uniqueIndex:uq_payroll_period"`
	Year       int       `gorm:"type:smallint;not null;uniqueIndex:uq_payroll_period"`

	AttendanceDays float64 `gorm:"type:numeric(4,1);not null"`

	// Net salary after PF and ESI deductions, rounded to two decimals at
	// generation time. Rows are created once and deleted, never updated.
	NetSalary float64 `gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
