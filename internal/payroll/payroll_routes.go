package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer, rdb *redis.Client) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionRead), handler.GetAll)
		payrolls.GET("/self", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionReadSelf), handler.GetSelf)

		generate := payrolls.Group("")
		if rdb != nil {
			generate.Use(middleware.Idempotency(rdb))
		}
		generate.POST("/generate", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionCreate), handler.Generate)

		// GET variant kept for form-link compatibility with older admin UIs.
		payrolls.GET("/delete/:id", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionDelete), handler.Delete)
		payrolls.DELETE("/:id", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionDelete), handler.Delete)
	}
}
