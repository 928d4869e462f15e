package dashboard

type MonthAttendance struct {
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	TotalDays float64 `json:"total_days"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type DashboardResponse struct {
	Headcount           int64   `json:"headcount"`
	MonthlyPayrollTotal float64 `json:"monthly_payroll_total"`

	// Employees missing any of PAN, UAN, PF number or ESI number.
	ComplianceIssues int64 `json:"compliance_issues"`

	AttendanceTrend        []MonthAttendance `json:"attendance_trend"`
	DepartmentDistribution []DepartmentCount `json:"department_distribution"`
}
