package user

type CreateUserRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	Role       string  `json:"role" binding:"required,oneof=admin employee"`
	EmployeeID *string `json:"employee_id" binding:"omitempty,uuid"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
	IsActive   bool   `json:"is_active"`
}
