package app

import (
	"context"
	"os"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/auth"
	"go-payroll/internal/chat"
	"go-payroll/internal/company"
	"go-payroll/internal/dashboard"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/report"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- Access Gate ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- External Collaborators ---
	renderer := report.NewPDFRenderer()
	chatClient := chat.NewSarvamClient(os.Getenv("SARVAM_BASE_URL"), os.Getenv("SARVAM_API_KEY"))

	// --- Services ---
	attendanceService := attendance.NewService(gormDB, attendanceRepo)
	authService := auth.NewService(userRepo)
	chatService := chat.NewService(chatClient, chat.SnapshotFunc(func(ctx context.Context) (chat.Snapshot, error) {
		headcount, err := dashboardRepo.CountEmployees(ctx)
		if err != nil {
			return chat.Snapshot{}, err
		}
		now := time.Now()
		total, err := dashboardRepo.PayrollTotalForPeriod(ctx, int(now.Month()), now.Year())
		if err != nil {
			return chat.Snapshot{}, err
		}
		return chat.Snapshot{Headcount: headcount, MonthlyPayrollTotal: total}, nil
	}))
	companyService := company.NewService(companyRepo)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, counterRepo, outboxRepo, rdb)
	payrollService := payroll.NewServiceWithOutbox(gormDB, payrollRepo, employeeRepo, attendanceService, outboxRepo)
	reportService := report.NewService(userRepo, employeeRepo, companyRepo, renderer)
	userService := user.NewService(userRepo, employeeRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	chatHandler := chat.NewHandler(chatService)
	companyHandler := company.NewHandler(companyService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	reportHandler := report.NewHandler(reportService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	root := router.Group("")
	{
		auth.RegisterRoutes(root, authHandler)
		attendance.RegisterRoutes(root, attendanceHandler, enforcer)
		chat.RegisterRoutes(root, chatHandler)
		company.RegisterRoutes(root, companyHandler, enforcer)
		dashboard.RegisterRoutes(root, dashboardHandler, enforcer)
		employee.RegisterRoutes(root, employeeHandler, enforcer)
		payroll.RegisterRoutes(root, payrollHandler, enforcer, rdb)
		report.RegisterRoutes(root, reportHandler, enforcer)
		user.RegisterRoutes(root, userHandler, enforcer)
	}

	return nil
}
