package app

import (
	"go-payroll/internal/attendance"
	"go-payroll/internal/company"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	"go-payroll/internal/user"

	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&payroll.Payroll{},
		&company.Company{},
		&user.User{},
	); err != nil {
		return err
	}

	// Outbox and counter tables are driven by raw SQL repositories.
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type varchar(64) PRIMARY KEY,
			last_value bigint NOT NULL DEFAULT 0,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id uuid PRIMARY KEY,
			request_id varchar(64),
			aggregate_type varchar(64) NOT NULL,
			aggregate_id uuid NOT NULL,
			event_type varchar(64) NOT NULL,
			topic varchar(128) NOT NULL,
			payload jsonb NOT NULL,
			status varchar(16) NOT NULL DEFAULT 'pending',
			retry_count int NOT NULL DEFAULT 0,
			next_retry_at timestamptz,
			error_message text,
			processed_at timestamptz,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, created_at)`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
