package employee

// Required-field checks for create/update run in the service so the first
// missing field is reported in a fixed order (name, role, salary, client),
// matching what the dashboard form shows.
type CreateEmployeeRequest struct {
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	PaymentType    string `json:"payment_type" binding:"omitempty,oneof=Weekly Monthly 'Per Delivery'"`
	SalaryRate     string `json:"salary_rate"` // form field, string-encoded
	AssignedClient string `json:"assigned_client"`
}

type UpdateEmployeeRequest struct {
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	PaymentType    string `json:"payment_type" binding:"omitempty,oneof=Weekly Monthly 'Per Delivery'"`
	SalaryRate     string `json:"salary_rate"`
	AssignedClient string `json:"assigned_client"`
	Status         string `json:"status" binding:"omitempty,oneof=Active Inactive 'On Leave'"`
}

type SalaryRecordResponse struct {
	Period string `json:"period"`
	Amount int64  `json:"amount"`
	Units  int    `json:"units,omitempty"`
}

type AdvanceRecordResponse struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

type EmployeeResponse struct {
	ID             int64                   `json:"id"`
	FullName       string                  `json:"full_name"`
	Role           string                  `json:"role"`
	PaymentType    string                  `json:"payment_type"`
	SalaryRate     int64                   `json:"salary_rate"`
	AssignedClient string                  `json:"assigned_client"`
	Status         string                  `json:"status"`
	SalaryHistory  []SalaryRecordResponse  `json:"salary_history"`
	Advances       []AdvanceRecordResponse `json:"advances"`
	Assets         []string                `json:"assets"`
}

// EmployeeOption is the slim shape for assignment dropdowns.
type EmployeeOption struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}
