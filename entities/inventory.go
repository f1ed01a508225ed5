package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ItemName  string          `gorm:"uniqueIndex;not null" json:"item_name"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Cost      decimal.Decimal `gorm:"type:numeric;not null" json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
}

// InventoryPatch names the inventory fields to change. Nil fields are left untouched.
type InventoryPatch struct {
	ItemName *string          `json:"item_name"`
	Quantity *int             `json:"quantity"`
	Cost     *decimal.Decimal `json:"cost"`
}

func (p InventoryPatch) IsEmpty() bool {
	return p.ItemName == nil && p.Quantity == nil && p.Cost == nil
}
