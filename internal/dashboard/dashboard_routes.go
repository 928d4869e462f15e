package dashboard

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	r.GET("/dashboard",
		middleware.AuthMiddleware(),
		middleware.Authorize(enforcer, rbac.ResourceDashboard, rbac.ActionRead),
		handler.Summary,
	)
}
