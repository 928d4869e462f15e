package employee

type CreateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Designation string  `json:"designation" binding:"required"`
	Department  string  `json:"department"`
	BasicSalary float64 `json:"basic_salary" binding:"required,gte=0"`
	JoiningDate string  `json:"joining_date" binding:"required"`
	PAN         *string `json:"pan"`
	UAN         *string `json:"uan"`
	PFNumber    *string `json:"pf_number"`
	ESINumber   *string `json:"esi_number"`
}

type UpdateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Designation string  `json:"designation" binding:"required"`
	Department  string  `json:"department"`
	BasicSalary float64 `json:"basic_salary" binding:"required,gte=0"`
	JoiningDate string  `json:"joining_date" binding:"required"`
	PAN         *string `json:"pan"`
	UAN         *string `json:"uan"`
	PFNumber    *string `json:"pf_number"`
	ESINumber   *string `json:"esi_number"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Designation    string  `json:"designation"`
	Department     string  `json:"department,omitempty"`
	BasicSalary    float64 `json:"basic_salary"`
	JoiningDate    string  `json:"joining_date"`
	PAN            *string `json:"pan,omitempty"`
	UAN            *string `json:"uan,omitempty"`
	PFNumber       *string `json:"pf_number,omitempty"`
	ESINumber      *string `json:"esi_number,omitempty"`
}
