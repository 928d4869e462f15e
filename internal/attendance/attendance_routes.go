package attendance

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/update", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionUpdate), handler.Upsert)
		attendances.GET("", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionRead), handler.GetAll)
		attendances.GET("/self", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionReadSelf), handler.GetSelf)
	}
}
