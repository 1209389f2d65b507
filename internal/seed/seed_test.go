package seed_test

import (
	"context"
	"testing"

	"go-paydesk/internal/company"
	"go-paydesk/internal/employee"
	"go-paydesk/internal/expense"
	"go-paydesk/internal/payroll"
	"go-paydesk/internal/seed"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func loadSeed(t *testing.T) seed.Repositories {
	t.Helper()

	repos := seed.Repositories{
		Employees: employee.NewMemoryRepository(),
		Companies: company.NewMemoryRepository(),
		Expenses:  expense.NewMemoryRepository(),
		Payrolls:  payroll.NewMemoryRepository(),
	}
	assert.NoError(t, seed.Load(context.Background(), repos, zap.NewNop()))
	return repos
}

func TestSeedLoad_Revenue(t *testing.T) {
	repos := loadSeed(t)
	svc := company.NewService(repos.Companies)

	revenue, err := svc.Revenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, company.RevenueResponse{Total: 55000, Paid: 33000, Pending: 22000}, revenue)
}

func TestSeedLoad_ExpenseTotals(t *testing.T) {
	repos := loadSeed(t)
	svc := expense.NewService(repos.Expenses)

	totals, err := svc.CategoryTotals(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []expense.CategoryTotal{
		{Category: expense.CategoryOffice, Total: 1500},
		{Category: expense.CategoryFuel, Total: 800},
		{Category: expense.CategoryBikes, Total: 2500},
		{Category: expense.CategoryStaff, Total: 1200},
		{Category: expense.CategoryMiscellaneous, Total: 600},
	}, totals)

	exps, err := svc.GetAll(context.Background(), "All")
	assert.NoError(t, err)
	assert.Len(t, exps, 5)
	// Most recent expense first.
	assert.Equal(t, expense.CategoryMiscellaneous, exps[0].Category)
}

func TestSeedLoad_PayrollStats(t *testing.T) {
	repos := loadSeed(t)
	svc := payroll.NewService(repos.Payrolls)

	t.Run("weekly partition nets out the advance", func(t *testing.T) {
		stats, err := svc.Stats(context.Background(), payroll.PartitionWeekly)
		assert.NoError(t, err)
		// Ali Khan 900-500 pending, Omar Khalid 900 approved.
		assert.Equal(t, payroll.PayrollStatsResponse{Total: 1300, Approved: 900, Pending: 400}, stats)
	})

	t.Run("per delivery counts the paid entry as approved", func(t *testing.T) {
		stats, err := svc.Stats(context.Background(), payroll.PartitionPerDelivery)
		assert.NoError(t, err)
		assert.Equal(t, payroll.PayrollStatsResponse{Total: 2075, Approved: 950, Pending: 1125}, stats)
	})
}

func TestSeedLoad_Employees(t *testing.T) {
	repos := loadSeed(t)
	svc := employee.NewService(repos.Employees, nil)

	all, err := svc.GetAll(context.Background(), "All")
	assert.NoError(t, err)
	assert.Len(t, all, 6)

	weekly, err := svc.GetAll(context.Background(), employee.PaymentWeekly)
	assert.NoError(t, err)
	assert.Len(t, weekly, 2)

	var aliKhan employee.EmployeeResponse
	for _, e := range all {
		if e.FullName == "Ali Khan" {
			aliKhan = e
		}
	}
	assert.Equal(t, int64(900), aliKhan.SalaryRate)
	// The open advance the weekly payroll entry deducts.
	assert.Len(t, aliKhan.Advances, 1)
	assert.Equal(t, int64(500), aliKhan.Advances[0].Amount)
	assert.Equal(t, employee.AdvancePending, aliKhan.Advances[0].Status)
}
