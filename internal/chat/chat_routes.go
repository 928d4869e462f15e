package chat

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	// Open to both roles, throttled per user because every call hits the
	// upstream completion API.
	r.POST("/api/chat",
		middleware.AuthMiddleware(),
		middleware.RateLimitByUser(0.5, 3),
		handler.Ask,
	)
}
