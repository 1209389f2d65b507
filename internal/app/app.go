package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"go-paydesk/internal/company"
	"go-paydesk/internal/employee"
	"go-paydesk/internal/expense"
	"go-paydesk/internal/messaging/kafka"
	"go-paydesk/internal/messaging/kafka/producer"
	"go-paydesk/internal/payroll"
	"go-paydesk/internal/seed"
	"go-paydesk/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store drivers selectable via STORE_DRIVER. Memory is the default: the
// dashboard is a per-session tool and works without any infrastructure.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type repositories struct {
	employees employee.Repository
	companies company.Repository
	expenses  expense.Repository
	payrolls  payroll.Repository
}

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = DriverMemory
	}

	var (
		repos  repositories
		sqlDB  *sql.DB
		outbox kafka.OutboxRepository
	)

	switch driver {
	case DriverMemory:
		repos = repositories{
			employees: employee.NewMemoryRepository(),
			companies: company.NewMemoryRepository(),
			expenses:  expense.NewMemoryRepository(),
			payrolls:  payroll.NewMemoryRepository(),
		}

		if err := seed.Load(context.Background(), seed.Repositories{
			Employees: repos.employees,
			Companies: repos.companies,
			Expenses:  repos.expenses,
			Payrolls:  repos.payrolls,
		}, logger); err != nil {
			return err
		}

		outbox = buildMemoryOutbox(logger)

	case DriverPostgres, DriverSQLite:
		gormDB, err := connectGorm(driver)
		if err != nil {
			return err
		}

		if err := gormDB.AutoMigrate(
			&employee.Employee{}, &employee.SalaryRecord{}, &employee.AdvanceRecord{}, &employee.Asset{},
			&company.Company{}, &company.Assignment{}, &company.Invoice{}, &company.Payment{},
			&expense.Expense{},
			&payroll.PayrollEntry{},
		); err != nil {
			return err
		}

		sqlDB, err = gormDB.DB()
		if err != nil {
			return err
		}

		repos = repositories{
			employees: employee.NewRepository(gormDB),
			companies: company.NewRepository(gormDB),
			expenses:  expense.NewRepository(gormDB),
			payrolls:  payroll.NewRepository(gormDB),
		}

		// The outbox SQL is postgres-specific; the sqlite store falls back
		// to the in-process queue.
		if driver == DriverPostgres {
			if err := kafka.EnsureOutboxTable(context.Background(), sqlDB); err != nil {
				return err
			}
			outbox = kafka.NewOutboxRepository(sqlDB)
		} else {
			sqlDB = nil
			outbox = buildMemoryOutbox(logger)
		}

		if err := seedIfEmpty(gormDB, repos, logger); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown STORE_DRIVER: %s", driver)
	}

	rdb := connectRedisOptional(logger)

	return registerModules(router, sqlDB, repos, outbox, rdb, logger)
}

func connectGorm(driver string) (*gorm.DB, error) {
	if driver == DriverSQLite {
		return connection.ConnectSQLite(os.Getenv("SQLITE_PATH"))
	}
	return connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
}

// buildMemoryOutbox drains the in-memory queue from inside the API process.
// The SQL drivers leave draining to the worker binary instead; in memory mode
// there is no shared store for a second process to poll.
func buildMemoryOutbox(logger *zap.Logger) kafka.OutboxRepository {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		logger.Info("KAFKA_BROKER not set, payroll events disabled")
		return nil
	}

	writer, err := connection.ConnectKafkaWithRetry(broker, 5)
	if err != nil {
		logger.Warn("kafka unavailable, payroll events disabled", zap.Error(err))
		return nil
	}

	outbox := kafka.NewMemoryOutbox()
	go producer.ProcessOutboxEvents(context.Background(), outbox, writer, logger, 3*time.Second)
	return outbox
}

// seedIfEmpty loads the reference dataset once per fresh database.
func seedIfEmpty(gormDB *gorm.DB, repos repositories, logger *zap.Logger) error {
	var count int64
	if err := gormDB.Model(&company.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return seed.Load(context.Background(), seed.Repositories{
		Employees: repos.employees,
		Companies: repos.companies,
		Expenses:  repos.expenses,
		Payrolls:  repos.payrolls,
	}, logger)
}

func connectRedisOptional(logger *zap.Logger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Info("REDIS_ADDR not set, caching and idempotency disabled")
		return nil
	}

	rdb, err := connection.ConnectRedisWithRetry(addr, 5)
	if err != nil {
		logger.Warn("redis unavailable, caching and idempotency disabled", zap.Error(err))
		return nil
	}
	return rdb
}
