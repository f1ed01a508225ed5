package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	e.Date = CalendarDate(e.Date)
	return
}

// CalendarDate drops the clock part of t and pins it to UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
