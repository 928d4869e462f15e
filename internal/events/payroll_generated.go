package events

import "time"

const PayrollGeneratedTopic = "payroll.payroll.generated.v1"

type PayrollGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	OccurredAt time.Time `json:"occurred_at"`
}
