// Package stock buckets inventory by quantity. Everything here is a pure
// function of the items passed in; callers hand it a fresh listing on
// every request and nothing is cached.
package stock

import "github.com/capsule-retail/inventory-dashboard/internal/models"

const (
	// LowThreshold: quantities strictly below are low.
	LowThreshold = 5
	// HighThreshold: quantities strictly above are high.
	HighThreshold = 15
)

type Level int

const (
	Normal Level = iota
	Low
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "normal"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LevelOf classifies a single quantity. 5 and 15 are both normal.
func LevelOf(quantity int) Level {
	switch {
	case quantity < LowThreshold:
		return Low
	case quantity > HighThreshold:
		return High
	default:
		return Normal
	}
}

// Buckets holds disjoint slices of the input, each in input order.
type Buckets struct {
	Low    []models.InventoryItem
	Normal []models.InventoryItem
	High   []models.InventoryItem
}

type Counts struct {
	Low    int `json:"low"`
	Normal int `json:"normal"`
	High   int `json:"high"`
}

func (b Buckets) Counts() Counts {
	return Counts{Low: len(b.Low), Normal: len(b.Normal), High: len(b.High)}
}

func Classify(items []models.InventoryItem) Buckets {
	b := Buckets{
		Low:    []models.InventoryItem{},
		Normal: []models.InventoryItem{},
		High:   []models.InventoryItem{},
	}
	for _, item := range items {
		switch LevelOf(item.Quantity) {
		case Low:
			b.Low = append(b.Low, item)
		case High:
			b.High = append(b.High, item)
		case Normal:
			b.Normal = append(b.Normal, item)
		}
	}
	return b
}
