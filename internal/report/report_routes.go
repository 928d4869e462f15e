package report

import (
	"net/http"

	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	reports := r.Group("/report")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("", middleware.Authorize(enforcer, rbac.ResourceReport, rbac.ActionGenerateSelf), handler.List)
		reports.GET("/generate/:type", authorizeByType(enforcer), handler.Generate)
	}
}

// Form 16 is self-scoped and open to both roles; the muster roll and PF/ESI
// summary cover the whole workforce and stay admin-only.
func authorizeByType(enforcer middleware.Enforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		action := rbac.ActionGenerateAll
		if c.Param("type") == TypeForm16 {
			action = rbac.ActionGenerateSelf
		}

		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, rbac.ResourceReport, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": rbac.ResourceReport + ":" + action})
			c.Abort()
			return
		}

		c.Next()
	}
}
