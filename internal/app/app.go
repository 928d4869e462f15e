package app

import (
	"os"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, runs migrations and registers every
// module on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		// Redis is a soft dependency: caching and idempotency replay degrade
		// gracefully without it.
		zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		zap.L().Info("redis connection established")
	}

	router.Use(middleware.RequestID())

	return registerModules(router, gormDB, redisClient)
}
