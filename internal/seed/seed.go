// Package seed loads the reference dataset into the session store on
// startup. Memory mode always seeds; SQL stores are seeded only when their
// tables are empty.
package seed

import (
	"context"
	"fmt"
	"time"

	"go-paydesk/internal/company"
	"go-paydesk/internal/employee"
	"go-paydesk/internal/expense"
	"go-paydesk/internal/payroll"

	"go.uber.org/zap"
)

type Repositories struct {
	Employees employee.Repository
	Companies company.Repository
	Expenses  expense.Repository
	Payrolls  payroll.Repository
}

func Load(ctx context.Context, repos Repositories, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("seed")

	if err := seedEmployees(ctx, repos.Employees); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	if err := seedCompanies(ctx, repos.Companies); err != nil {
		return fmt.Errorf("seed companies: %w", err)
	}
	if err := seedExpenses(ctx, repos.Expenses); err != nil {
		return fmt.Errorf("seed expenses: %w", err)
	}
	if err := seedPayroll(ctx, repos.Payrolls); err != nil {
		return fmt.Errorf("seed payroll: %w", err)
	}

	logger.Info("reference dataset loaded")
	return nil
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("seed: bad date literal " + value)
	}
	return t
}

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

func seedEmployees(ctx context.Context, repo employee.Repository) error {
	empls := []employee.Employee{
		{
			FullName:       "Ahmed Hassan",
			Role:           "Courier",
			PaymentType:    employee.PaymentPerDelivery,
			SalaryRate:     25,
			AssignedClient: "Emirates Express",
			Status:         employee.StatusActive,
			SalaryHistory: []employee.SalaryRecord{
				{Period: "Week 2, Jan 2026", Amount: 1125, Units: 45},
				{Period: "Week 1, Jan 2026", Amount: 1050, Units: 42},
			},
		},
		{
			FullName:       "Mohammed Ali",
			Role:           "Courier",
			PaymentType:    employee.PaymentPerDelivery,
			SalaryRate:     25,
			AssignedClient: "Emirates Express",
			Status:         employee.StatusActive,
			SalaryHistory: []employee.SalaryRecord{
				{Period: "Week 2, Jan 2026", Amount: 950, Units: 38},
			},
			Assets: []employee.Asset{{Name: "Delivery Bike DXB-412"}},
		},
		{
			FullName:       "Ali Khan",
			Role:           "Driver",
			PaymentType:    employee.PaymentWeekly,
			SalaryRate:     900,
			AssignedClient: "Dubai Logistics",
			Status:         employee.StatusActive,
			Advances: []employee.AdvanceRecord{
				{Date: date("2026-01-08"), Amount: 500, Status: employee.AdvancePending},
			},
		},
		{
			FullName:       "Omar Khalid",
			Role:           "Driver",
			PaymentType:    employee.PaymentWeekly,
			SalaryRate:     900,
			AssignedClient: "Dubai Logistics",
			Status:         employee.StatusActive,
			Assets:         []employee.Asset{{Name: "Van DXB-77"}},
		},
		{
			FullName:       "Fatima Al-Mansouri",
			Role:           "Supervisor",
			PaymentType:    employee.PaymentMonthly,
			SalaryRate:     6500,
			AssignedClient: "Abu Dhabi Transport",
			Status:         employee.StatusActive,
			Advances: []employee.AdvanceRecord{
				{Date: date("2025-12-15"), Amount: 1000, Status: employee.AdvancePaid},
			},
		},
		{
			FullName:       "Sara Ahmed",
			Role:           "Coordinator",
			PaymentType:    employee.PaymentMonthly,
			SalaryRate:     5800,
			AssignedClient: "Abu Dhabi Transport",
			Status:         employee.StatusActive,
		},
	}

	for i := range empls {
		if err := repo.Create(ctx, &empls[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedCompanies(ctx context.Context, repo company.Repository) error {
	companies := []company.Company{
		{
			Name:          "Emirates Express",
			ServiceType:   "Delivery Services",
			MonthlyCharge: 15000,
			PaymentStatus: company.PaymentStatusPaid,
			AssignedEmployees: []company.Assignment{
				{EmployeeName: "Ahmed Hassan"},
				{EmployeeName: "Mohammed Ali"},
			},
			Invoices: []company.Invoice{
				{Month: "Jan 2026", Amount: 15000, Status: "Paid", PaidDate: datePtr("2026-01-05")},
				{Month: "Dec 2025", Amount: 15000, Status: "Paid", PaidDate: datePtr("2025-12-05")},
			},
			PaymentHistory: []company.Payment{
				{Date: date("2026-01-05"), Amount: 15000, Method: "Bank Transfer"},
				{Date: date("2025-12-05"), Amount: 15000, Method: "Bank Transfer"},
			},
		},
		{
			Name:          "Dubai Logistics",
			ServiceType:   "Fleet Management",
			MonthlyCharge: 22000,
			PaymentStatus: company.PaymentStatusPending,
			AssignedEmployees: []company.Assignment{
				{EmployeeName: "Ali Khan"},
				{EmployeeName: "Omar Khalid"},
			},
			Invoices: []company.Invoice{
				{Month: "Jan 2026", Amount: 22000, Status: "Pending"},
				{Month: "Dec 2025", Amount: 22000, Status: "Paid", PaidDate: datePtr("2025-12-08")},
			},
			PaymentHistory: []company.Payment{
				{Date: date("2025-12-08"), Amount: 22000, Method: "Cheque"},
				{Date: date("2025-11-10"), Amount: 22000, Method: "Bank Transfer"},
			},
		},
		{
			Name:          "Abu Dhabi Transport",
			ServiceType:   "Staff Management",
			MonthlyCharge: 18000,
			PaymentStatus: company.PaymentStatusPaid,
			AssignedEmployees: []company.Assignment{
				{EmployeeName: "Fatima Al-Mansouri"},
				{EmployeeName: "Sara Ahmed"},
			},
			Invoices: []company.Invoice{
				{Month: "Jan 2026", Amount: 18000, Status: "Paid", PaidDate: datePtr("2026-01-03")},
				{Month: "Dec 2025", Amount: 18000, Status: "Paid", PaidDate: datePtr("2025-12-03")},
			},
			PaymentHistory: []company.Payment{
				{Date: date("2026-01-03"), Amount: 18000, Method: "Bank Transfer"},
				{Date: date("2025-12-03"), Amount: 18000, Method: "Bank Transfer"},
			},
		},
	}

	for i := range companies {
		if err := repo.Create(ctx, &companies[i]); err != nil {
			return err
		}
	}
	return nil
}

// seedExpenses inserts oldest first so the listing comes out newest first.
func seedExpenses(ctx context.Context, repo expense.Repository) error {
	expenses := []expense.Expense{
		{Date: date("2026-01-04"), Category: expense.CategoryOffice, Amount: 1500, Notes: "Office rent share"},
		{Date: date("2026-01-06"), Category: expense.CategoryFuel, Amount: 800, Notes: "Fleet refuelling"},
		{Date: date("2026-01-08"), Category: expense.CategoryBikes, Amount: 2500, Notes: "Two bike services and spares"},
		{Date: date("2026-01-10"), Category: expense.CategoryStaff, Amount: 1200, Notes: "Uniforms"},
		{Date: date("2026-01-12"), Category: expense.CategoryMiscellaneous, Amount: 600, Notes: expense.DefaultNotes},
	}

	for i := range expenses {
		if err := repo.Create(ctx, &expenses[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedPayroll(ctx context.Context, repo payroll.Repository) error {
	entries := []payroll.PayrollEntry{
		{EmployeeName: "Ali Khan", PaymentType: payroll.PartitionWeekly, CalculatedAmount: 900, AdvanceDeduction: 500, Status: payroll.StatusPending},
		{EmployeeName: "Omar Khalid", PaymentType: payroll.PartitionWeekly, CalculatedAmount: 900, Status: payroll.StatusApproved, ApprovedAt: datePtr("2026-01-12")},
		{EmployeeName: "Fatima Al-Mansouri", PaymentType: payroll.PartitionMonthly, CalculatedAmount: 6500, Status: payroll.StatusPending},
		{EmployeeName: "Sara Ahmed", PaymentType: payroll.PartitionMonthly, CalculatedAmount: 5800, Status: payroll.StatusApproved, ApprovedAt: datePtr("2026-01-10")},
		{EmployeeName: "Ahmed Hassan", PaymentType: payroll.PartitionPerDelivery, CalculatedAmount: 1125, Status: payroll.StatusPending},
		{EmployeeName: "Mohammed Ali", PaymentType: payroll.PartitionPerDelivery, CalculatedAmount: 950, Status: payroll.StatusPaid, ApprovedAt: datePtr("2026-01-09"), PaidAt: datePtr("2026-01-11")},
	}

	for i := range entries {
		if err := repo.Create(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}
