package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-paydesk/internal/company"
	"go-paydesk/internal/dashboard"
	"go-paydesk/internal/employee"
	"go-paydesk/internal/expense"
	"go-paydesk/internal/payroll"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	employee.Service

	getAllFn func(ctx context.Context, paymentType string) ([]employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, paymentType string) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, paymentType)
}

type fakeCompanyService struct {
	company.Service

	revenueFn func(ctx context.Context) (company.RevenueResponse, error)
}

func (f *fakeCompanyService) Revenue(ctx context.Context) (company.RevenueResponse, error) {
	return f.revenueFn(ctx)
}

type fakeExpenseService struct {
	expense.Service

	categoryTotalsFn func(ctx context.Context) ([]expense.CategoryTotal, error)
}

func (f *fakeExpenseService) CategoryTotals(ctx context.Context) ([]expense.CategoryTotal, error) {
	return f.categoryTotalsFn(ctx)
}

type fakePayrollService struct {
	payroll.Service

	statsFn func(ctx context.Context, partition string) (payroll.PayrollStatsResponse, error)
}

func (f *fakePayrollService) Stats(ctx context.Context, partition string) (payroll.PayrollStatsResponse, error) {
	return f.statsFn(ctx, partition)
}

func seededServices() (*fakeEmployeeService, *fakeCompanyService, *fakeExpenseService, *fakePayrollService) {
	employees := &fakeEmployeeService{
		getAllFn: func(ctx context.Context, paymentType string) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: 1, FullName: "Ahmed Hassan", Status: employee.StatusActive},
				{ID: 2, FullName: "Ali Khan", Status: employee.StatusActive},
				{ID: 3, FullName: "Omar Khalid", Status: employee.StatusInactive},
			}, nil
		},
	}
	companies := &fakeCompanyService{
		revenueFn: func(ctx context.Context) (company.RevenueResponse, error) {
			return company.RevenueResponse{Total: 55000, Paid: 33000, Pending: 22000}, nil
		},
	}
	expenses := &fakeExpenseService{
		categoryTotalsFn: func(ctx context.Context) ([]expense.CategoryTotal, error) {
			return []expense.CategoryTotal{
				{Category: expense.CategoryOffice, Total: 1500},
				{Category: expense.CategoryFuel, Total: 800},
			}, nil
		},
	}
	payrolls := &fakePayrollService{
		statsFn: func(ctx context.Context, partition string) (payroll.PayrollStatsResponse, error) {
			switch partition {
			case payroll.PartitionWeekly:
				return payroll.PayrollStatsResponse{Total: 2250, Approved: 1850, Pending: 400}, nil
			case payroll.PartitionMonthly:
				return payroll.PayrollStatsResponse{Total: 12300, Approved: 6500, Pending: 5800}, nil
			default:
				return payroll.PayrollStatsResponse{}, nil
			}
		},
	}
	return employees, companies, expenses, payrolls
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("success without cache", func(t *testing.T) {
		employees, companies, expenses, payrolls := seededServices()
		svc := dashboard.NewService(employees, companies, expenses, payrolls, nil)

		resp, err := svc.Summary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(55000), resp.Revenue.Total)
		assert.Len(t, resp.ExpenseTotals, 2)
		assert.Equal(t, int64(2250), resp.Payroll[payroll.PartitionWeekly].Total)
		assert.Equal(t, int64(12300), resp.Payroll[payroll.PartitionMonthly].Total)
		assert.Len(t, resp.Payroll, len(payroll.Partitions))
		assert.Equal(t, dashboard.HeadcountResponse{Total: 3, Active: 2}, resp.Headcount)
	})

	t.Run("cache miss populates redis", func(t *testing.T) {
		employees, companies, expenses, payrolls := seededServices()
		rdb, mock := redismock.NewClientMock()
		svc := dashboard.NewService(employees, companies, expenses, payrolls, rdb)

		mock.ExpectGet(dashboard.SummaryCacheKey).RedisNil()
		mock.Regexp().ExpectSet(dashboard.SummaryCacheKey, `.*"total":55000.*`, 30*time.Second).SetVal("OK")

		resp, err := svc.Summary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(33000), resp.Revenue.Paid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the services", func(t *testing.T) {
		employees, companies, expenses, payrolls := seededServices()
		companies.revenueFn = func(ctx context.Context) (company.RevenueResponse, error) {
			t.Fatal("revenue should not be recomputed on a cache hit")
			return company.RevenueResponse{}, nil
		}

		cached, err := json.Marshal(dashboard.SummaryResponse{
			Revenue:   company.RevenueResponse{Total: 70000},
			Headcount: dashboard.HeadcountResponse{Total: 4, Active: 4},
		})
		assert.NoError(t, err)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(dashboard.SummaryCacheKey).SetVal(string(cached))

		svc := dashboard.NewService(employees, companies, expenses, payrolls, rdb)

		resp, err := svc.Summary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(70000), resp.Revenue.Total)
		assert.Equal(t, 4, resp.Headcount.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative upstream failure", func(t *testing.T) {
		employees, companies, expenses, payrolls := seededServices()
		wantErr := errors.New("revenue query failed")
		companies.revenueFn = func(ctx context.Context) (company.RevenueResponse, error) {
			return company.RevenueResponse{}, wantErr
		}

		svc := dashboard.NewService(employees, companies, expenses, payrolls, nil)

		_, err := svc.Summary(ctx)
		assert.ErrorIs(t, err, wantErr)
	})
}
