package models

// InventoryItem is one stock line. Items are only ever added or deleted;
// there is no in-place update.
type InventoryItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"size:255;not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Category string  `json:"category" gorm:"size:100"`
	Supplier string  `json:"supplier" gorm:"size:255"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
