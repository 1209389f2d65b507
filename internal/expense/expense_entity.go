package expense

import (
	"time"

	"gorm.io/gorm"
)

const (
	CategoryOffice        = "Office"
	CategoryFuel          = "Fuel"
	CategoryBikes         = "Bikes"
	CategoryStaff         = "Staff"
	CategoryMiscellaneous = "Miscellaneous"

	DefaultNotes = "No notes"
)

// Categories in display order. Category totals report every entry here even
// when no expense matches.
var Categories = []string{
	CategoryOffice,
	CategoryFuel,
	CategoryBikes,
	CategoryStaff,
	CategoryMiscellaneous,
}

type Expense struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Date     time.Time `gorm:"type:date;not null"`
	Category string    `gorm:"type:varchar(30);not null;index"`
	Amount   int64     `gorm:"type:bigint;not null"` // whole AED, > 0
	Notes    string    `gorm:"type:text;not null;default:'No notes'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func ValidCategory(v string) bool {
	for _, c := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
