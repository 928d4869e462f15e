package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Designation    string    `gorm:"type:varchar(100)"`
	Department     string    `gorm:"type:varchar(50)"`

	// Monthly basic salary in rupees. Statutory deductions are derived from
	// this figure at payroll time, never stored here.
	BasicSalary float64   `gorm:"type:numeric(12,2);not null;default:0"`
	JoiningDate time.Time `gorm:"type:date;not null"`

	// Statutory identifiers; missing values show up as compliance issues on
	// the dashboard.
	PAN       *string `gorm:"type:varchar(20)"`
	UAN       *string `gorm:"type:varchar(20)"`
	PFNumber  *string `gorm:"type:varchar(20)"`
	ESINumber *string `gorm:"type:varchar(20)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}
