package employee

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	employees := r.Group("/employee")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionRead), handler.GetAll)
		employees.GET("/:id", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionRead), handler.GetByID)
		employees.POST("", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionCreate), handler.Create)
		employees.PUT("/:id", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionUpdate), handler.Update)
	}
}
