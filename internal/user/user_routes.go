package user

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	users := r.Group("/user")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.Authorize(enforcer, rbac.ResourceUser, rbac.ActionRead), handler.GetAll)
		users.POST("", middleware.Authorize(enforcer, rbac.ResourceUser, rbac.ActionCreate), handler.Create)
	}
}
