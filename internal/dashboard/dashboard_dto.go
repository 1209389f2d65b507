package dashboard

import (
	"go-paydesk/internal/company"
	"go-paydesk/internal/expense"
	"go-paydesk/internal/payroll"
)

type HeadcountResponse struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// SummaryResponse is the single payload behind the dashboard landing page:
// one request instead of four.
type SummaryResponse struct {
	Revenue       company.RevenueResponse                `json:"revenue"`
	ExpenseTotals []expense.CategoryTotal                `json:"expense_totals"`
	Payroll       map[string]payroll.PayrollStatsResponse `json:"payroll"`
	Headcount     HeadcountResponse                      `json:"headcount"`
}
