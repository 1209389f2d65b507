package events

import "time"

const PayrollStatusChangedTopic = "paydesk.payroll.status.v1"

// PayrollStatusChangedEvent is emitted once per successful state transition.
// The consumer settles pending advances when an entry carrying an advance
// deduction reaches Paid.
type PayrollStatusChangedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	EntryID          int64     `json:"entry_id"`
	EmployeeName     string    `json:"employee_name"`
	Partition        string    `json:"partition"`
	FromStatus       string    `json:"from_status"`
	ToStatus         string    `json:"to_status"`
	FinalPayable     int64     `json:"final_payable"`
	AdvanceDeduction int64     `json:"advance_deduction"`
	OccurredAt       time.Time `json:"occurred_at"`
}
