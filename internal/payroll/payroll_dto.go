package payroll

type PayrollEntryResponse struct {
	ID               int64   `json:"id"`
	EmployeeName     string  `json:"employee_name"`
	PaymentType      string  `json:"payment_type"`
	CalculatedAmount int64   `json:"calculated_amount"`
	AdvanceDeduction int64   `json:"advance_deduction"`
	FinalPayable     int64   `json:"final_payable"`
	Status           string  `json:"status"`
	ApprovedAt       *string `json:"approved_at,omitempty"`
	PaidAt           *string `json:"paid_at,omitempty"`
}

// PayrollStatsResponse sums final payables for one partition. Approved
// includes Paid entries: once money went out it stays counted as approved
// spend on the dashboard cards.
type PayrollStatsResponse struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}
