package stock

import "github.com/capsule-retail/inventory-dashboard/internal/models"

// NotificationItem is one row of the flattened notification list.
type NotificationItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Level    Level  `json:"level"`
}

type NotificationView struct {
	LowStock    []models.InventoryItem `json:"lowStock"`
	HighStock   []models.InventoryItem `json:"highStock"`
	NormalStock []models.InventoryItem `json:"normalStock"`
	Counts      Counts                 `json:"counts"`
	Items       []NotificationItem     `json:"items"`
}

// Notifications builds the notification view. The flattened list puts low
// stock first, then high, then normal, since that is the order the banners
// are shown in.
func Notifications(items []models.InventoryItem) NotificationView {
	b := Classify(items)

	flat := make([]NotificationItem, 0, len(items))
	for _, group := range []struct {
		level Level
		items []models.InventoryItem
	}{
		{Low, b.Low},
		{High, b.High},
		{Normal, b.Normal},
	} {
		for _, item := range group.items {
			flat = append(flat, NotificationItem{
				ID:       item.ID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Level:    group.level,
			})
		}
	}

	return NotificationView{
		LowStock:    b.Low,
		HighStock:   b.High,
		NormalStock: b.Normal,
		Counts:      b.Counts(),
		Items:       flat,
	}
}

// QuantityPoint is one bar of the quantity-by-item chart.
type QuantityPoint struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type TrendView struct {
	Categories map[string]int  `json:"categories"`
	Stock      Counts          `json:"stock"`
	Quantities []QuantityPoint `json:"quantities"`
}

// Trends tallies items per category and keeps the quantity series in the
// order the items were listed. Names are not deduplicated.
func Trends(items []models.InventoryItem) TrendView {
	v := TrendView{
		Categories: make(map[string]int),
		Stock:      Classify(items).Counts(),
		Quantities: make([]QuantityPoint, 0, len(items)),
	}
	for _, item := range items {
		v.Categories[item.Category]++
		v.Quantities = append(v.Quantities, QuantityPoint{Name: item.Name, Quantity: item.Quantity})
	}
	return v
}
