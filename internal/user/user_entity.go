package user

import (
	"time"

	"go-payroll/internal/employee"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Explicit link to the employee record. Admin accounts without an
	// employee record leave this nil; everything self-scoped keys off it.
	EmployeeID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_user_employee"`

	Name     string `gorm:"type:varchar(255);not null"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(20);not null;default:'employee'"`
	IsActive bool   `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
