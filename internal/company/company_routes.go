package company

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	companies := r.Group("/company")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", middleware.Authorize(enforcer, rbac.ResourceCompany, rbac.ActionRead), handler.Get)
		companies.POST("", middleware.Authorize(enforcer, rbac.ResourceCompany, rbac.ActionUpdate), handler.Upsert)
	}
}
