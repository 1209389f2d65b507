package employee

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentWeekly      = "Weekly"
	PaymentMonthly     = "Monthly"
	PaymentPerDelivery = "Per Delivery"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "On Leave"

	AdvancePending = "Pending"
	AdvancePaid    = "Paid"
)

// Employee references its client company by name, not id. The source data is
// denormalized that way and payroll entries resolve employees the same way,
// so the name carries a uniqueness constraint.
type Employee struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	FullName       string `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_full_name"`
	Role           string `gorm:"type:varchar(100);not null"`
	PaymentType    string `gorm:"type:varchar(20);not null;index"`
	SalaryRate     int64  `gorm:"type:bigint;not null;default:0"` // whole AED per week/month/delivery
	AssignedClient string `gorm:"type:varchar(150);not null;index"`
	Status         string `gorm:"type:varchar(20);not null;default:'Active'"`

	SalaryHistory []SalaryRecord  `gorm:"foreignKey:EmployeeID"`
	Advances      []AdvanceRecord `gorm:"foreignKey:EmployeeID"`
	Assets        []Asset         `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type SalaryRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"not null;index"`
	Period     string    `gorm:"type:varchar(40);not null"` // e.g. "Jan 2026" or "Week 3, Jan 2026"
	Amount     int64     `gorm:"type:bigint;not null;default:0"`
	Units      int       `gorm:"type:int;not null;default:0"` // deliveries for per-delivery staff
	CreatedAt  time.Time
}

type AdvanceRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"not null;index"`
	Date       time.Time `gorm:"type:date;not null"`
	Amount     int64     `gorm:"type:bigint;not null;default:0"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Asset struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64  `gorm:"not null;index"`
	Name       string `gorm:"type:varchar(120);not null"`
}

func (Employee) TableName() string {
	return "employees"
}

func ValidPaymentType(v string) bool {
	switch v {
	case PaymentWeekly, PaymentMonthly, PaymentPerDelivery:
		return true
	}
	return false
}
