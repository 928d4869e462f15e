package payroll

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000"`

	// Manual fallback, used only when no attendance record exists for the
	// period. A stored record always wins over this value.
	AttendanceDays *float64 `json:"attendance_days"`
}

type PayrollResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	AttendanceDays float64 `json:"attendance_days"`
	NetSalary      float64 `json:"net_salary"`

	// Breakdown figures are included on generation responses only; listings
	// carry the stored attendance days and net salary.
	EarnedBasic  float64 `json:"earned_basic,omitempty"`
	PFDeduction  float64 `json:"pf_deduction,omitempty"`
	ESIDeduction float64 `json:"esi_deduction,omitempty"`
}
