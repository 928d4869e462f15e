package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_period"`
	Month      int       `gorm:"type:smallint;not null;uniqueIndex:uq_attendance_period"`
	Year       int       `gorm:"type:smallint;not null;uniqueIndex:uq_attendance_period"`

	// Days present in the period, fractional half-days allowed. Always within
	// [0, 31]; the service rejects anything else before it reaches the row.
	PresentDays float64 `gorm:"type:numeric(4,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
