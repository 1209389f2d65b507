package company

type CreateCompanyRequest struct {
	Name          string `json:"name"`
	ServiceType   string `json:"service_type"`
	MonthlyCharge string `json:"monthly_charge"` // form field, string-encoded
	// Comma-separated employee names, split and trimmed by the service.
	AssignedEmployees string `json:"assigned_employees"`
}

type UpdateCompanyRequest struct {
	Name              string `json:"name"`
	ServiceType       string `json:"service_type"`
	MonthlyCharge     string `json:"monthly_charge"`
	AssignedEmployees string `json:"assigned_employees"`
	PaymentStatus     string `json:"payment_status" binding:"omitempty,oneof=Pending Paid"`
}

type InvoiceResponse struct {
	Month    string  `json:"month"`
	Amount   int64   `json:"amount"`
	Status   string  `json:"status"`
	PaidDate *string `json:"paid_date"`
}

type PaymentResponse struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Method string `json:"method"`
}

type CompanyResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	ServiceType       string            `json:"service_type"`
	MonthlyCharge     int64             `json:"monthly_charge"`
	PaymentStatus     string            `json:"payment_status"`
	AssignedEmployees []string          `json:"assigned_employees"`
	Invoices          []InvoiceResponse `json:"invoices"`
	PaymentHistory    []PaymentResponse `json:"payment_history"`
}

// RevenueResponse is the dashboard's revenue card data: exact int64 sums of
// monthly charges partitioned by payment status.
type RevenueResponse struct {
	Total   int64 `json:"total"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}
