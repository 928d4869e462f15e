package attendance

type UpdateAttendanceRequest struct {
	EmployeeID  string   `json:"employee_id" binding:"required,uuid"`
	Month       int      `json:"month" binding:"required,min=1,max=12"`
	Year        int      `json:"year" binding:"required,min=2000"`
	PresentDays *float64 `json:"present_days" binding:"required"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	PresentDays  float64 `json:"present_days"`
}
