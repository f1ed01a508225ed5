package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Sale struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Date      time.Time       `gorm:"type:date;not null" json:"date"`
	Amount    decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	ItemsSold string          `gorm:"not null" json:"items_sold"`
	CreatedAt time.Time       `json:"created_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	s.Date = CalendarDate(s.Date)
	return
}

// ItemsSoldLabel is the items_sold text a purchase writes, e.g. "Latte Beans x 3".
func ItemsSoldLabel(itemName string, quantity int) string {
	return fmt.Sprintf("%s x %d", itemName, quantity)
}
