package app

import (
	"database/sql"

	"go-paydesk/internal/company"
	"go-paydesk/internal/dashboard"
	"go-paydesk/internal/employee"
	"go-paydesk/internal/expense"
	"go-paydesk/internal/messaging/kafka"
	"go-paydesk/internal/middleware"
	"go-paydesk/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	repos repositories,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Services ---
	employeeService := employee.NewService(repos.employees, rdb, logger)
	companyService := company.NewService(repos.companies, logger)
	expenseService := expense.NewService(repos.expenses, logger)
	payrollService := payroll.NewServiceWithOutbox(db, repos.payrolls, outbox, logger)
	dashboardService := dashboard.NewService(
		employeeService,
		companyService,
		expenseService,
		payrollService,
		rdb,
		logger,
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	expenseHandler := expense.NewHandler(expenseService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	// Coarse per-IP limit in front of auth; the per-user limiters only see
	// requests that carry a valid token.
	api.Use(middleware.RateLimitByIP(50, 100))
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		company.RegisterRoutes(api, companyHandler, logger)
		expense.RegisterRoutes(api, expenseHandler, logger)
		payroll.RegisterRoutes(api, payrollHandler, rdb, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, logger)
	}

	return nil
}
