package company

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"

	DefaultServiceType = "General Services"
)

type Company struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(150);not null;uniqueIndex:uq_company_name"`
	ServiceType   string `gorm:"type:varchar(100);not null;default:'General Services'"`
	MonthlyCharge int64  `gorm:"type:bigint;not null"` // whole AED, > 0
	PaymentStatus string `gorm:"type:varchar(20);not null;default:'Pending'"`

	// Assigned employees are denormalized names, same as the source data.
	AssignedEmployees []Assignment `gorm:"foreignKey:CompanyID"`
	Invoices          []Invoice    `gorm:"foreignKey:CompanyID"`
	PaymentHistory    []Payment    `gorm:"foreignKey:CompanyID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Assignment struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CompanyID    int64  `gorm:"not null;index"`
	EmployeeName string `gorm:"type:varchar(150);not null;index"`
}

type Invoice struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	CompanyID int64      `gorm:"not null;index"`
	Month     string     `gorm:"type:varchar(20);not null"` // e.g. "Jan 2026"
	Amount    int64      `gorm:"type:bigint;not null"`
	Status    string     `gorm:"type:varchar(20);not null;default:'Pending'"`
	PaidDate  *time.Time `gorm:"type:date"`
	CreatedAt time.Time
}

type Payment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CompanyID int64     `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	Amount    int64     `gorm:"type:bigint;not null"`
	Method    string    `gorm:"type:varchar(40);not null"` // "Bank Transfer", "Cheque", ...
	CreatedAt time.Time
}

func (Company) TableName() string {
	return "companies"
}
