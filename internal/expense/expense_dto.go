package expense

type CreateExpenseRequest struct {
	Date     string `json:"date"` // YYYY-MM-DD, defaults to today when blank
	Category string `json:"category" binding:"omitempty,oneof=Office Fuel Bikes Staff Miscellaneous"`
	Amount   string `json:"amount"` // form field, string-encoded
	Notes    string `json:"notes"`
}

type UpdateExpenseRequest struct {
	Date     string `json:"date"`
	Category string `json:"category" binding:"omitempty,oneof=Office Fuel Bikes Staff Miscellaneous"`
	Amount   string `json:"amount"`
	Notes    string `json:"notes"`
}

type ExpenseResponse struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Notes    string `json:"notes"`
}

// CategoryTotal always carries one entry per category, zero included.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}
