package payroll

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusPaid     = "Paid" // terminal

	PartitionWeekly      = "Weekly"
	PartitionMonthly     = "Monthly"
	PartitionPerDelivery = "Per Delivery"
)

// Partitions in tab display order.
var Partitions = []string{PartitionWeekly, PartitionMonthly, PartitionPerDelivery}

// PayrollEntry is one employee's payable for a run within a partition.
// CalculatedAmount and AdvanceDeduction are fixed at creation; the final
// payable is always derived from them, never stored, so the three values can
// never drift apart.
type PayrollEntry struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	EmployeeName     string `gorm:"type:varchar(150);not null;index"`
	PaymentType      string `gorm:"type:varchar(20);not null;index"` // partition key, shown as-is
	CalculatedAmount int64  `gorm:"type:bigint;not null"`            // gross, whole AED
	AdvanceDeduction int64  `gorm:"type:bigint;not null;default:0"`
	Status           string `gorm:"type:varchar(20);not null;default:'Pending';index"`

	ApprovedAt *time.Time `gorm:"index"`
	PaidAt     *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PayrollEntry) TableName() string {
	return "payroll_entries"
}

// FinalPayable clamps at zero; an advance can never push the payable
// negative.
func (e PayrollEntry) FinalPayable() int64 {
	final := e.CalculatedAmount - e.AdvanceDeduction
	if final < 0 {
		return 0
	}
	return final
}

func ValidPartition(v string) bool {
	switch v {
	case PartitionWeekly, PartitionMonthly, PartitionPerDelivery:
		return true
	}
	return false
}

// canTransition encodes the full status machine. Pending may be marked paid
// directly: both Pending and Approved entries expose the pay action in the
// dashboard, so the bypass is intended behavior.
func canTransition(current, target string) bool {
	switch target {
	case StatusApproved:
		return current == StatusPending
	case StatusPaid:
		return current == StatusPending || current == StatusApproved
	}
	return false
}
