package stock

import (
	"encoding/json"
	"testing"

	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOf(t *testing.T) {
	cases := []struct {
		quantity int
		want     Level
	}{
		{0, Low},
		{3, Low},
		{4, Low},
		{5, Normal},
		{10, Normal},
		{15, Normal},
		{16, High},
		{50, High},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelOf(tc.quantity), "quantity %d", tc.quantity)
	}
}

func sample() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: 1, Name: "Laptops", Quantity: 15, Category: "Electronics"},
		{ID: 2, Name: "Mice", Quantity: 3, Category: "Electronics"},
		{ID: 3, Name: "Lamps", Quantity: 25, Category: "Furniture"},
		{ID: 4, Name: "Chairs", Quantity: 5, Category: "Furniture"},
		{ID: 5, Name: "Tablets", Quantity: 1, Category: "Electronics"},
		{ID: 6, Name: "Paper", Quantity: 16, Category: "Office Supplies"},
	}
}

func TestClassify(t *testing.T) {
	b := Classify(sample())

	names := func(items []models.InventoryItem) []string {
		out := []string{}
		for _, i := range items {
			out = append(out, i.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Mice", "Tablets"}, names(b.Low))
	assert.Equal(t, []string{"Laptops", "Chairs"}, names(b.Normal))
	assert.Equal(t, []string{"Lamps", "Paper"}, names(b.High))
	assert.Equal(t, Counts{Low: 2, Normal: 2, High: 2}, b.Counts())
}

func TestClassify_Empty(t *testing.T) {
	b := Classify(nil)
	assert.NotNil(t, b.Low)
	assert.NotNil(t, b.Normal)
	assert.NotNil(t, b.High)
	assert.Equal(t, Counts{}, b.Counts())
}

func TestNotifications(t *testing.T) {
	v := Notifications(sample())

	assert.Len(t, v.LowStock, 2)
	assert.Len(t, v.HighStock, 2)
	assert.Len(t, v.NormalStock, 2)
	assert.Equal(t, Counts{Low: 2, Normal: 2, High: 2}, v.Counts)

	require.Len(t, v.Items, 6)
	assert.Equal(t, "Mice", v.Items[0].Name)
	assert.Equal(t, Low, v.Items[0].Level)
	assert.Equal(t, "Lamps", v.Items[2].Name)
	assert.Equal(t, High, v.Items[2].Level)
	assert.Equal(t, Normal, v.Items[5].Level)

	b, err := json.Marshal(v.Items[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Mice","quantity":3,"level":"low"}`, string(b))
}

func TestNotifications_EmptyEncodesArrays(t *testing.T) {
	b, err := json.Marshal(Notifications(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"lowStock": [], "highStock": [], "normalStock": [],
		"counts": {"low": 0, "normal": 0, "high": 0},
		"items": []
	}`, string(b))
}

func TestTrends(t *testing.T) {
	items := append(sample(), models.InventoryItem{ID: 7, Name: "Mice", Quantity: 9, Category: "Electronics"})
	v := Trends(items)

	assert.Equal(t, map[string]int{"Electronics": 4, "Furniture": 2, "Office Supplies": 1}, v.Categories)
	assert.Equal(t, Counts{Low: 2, Normal: 3, High: 2}, v.Stock)
	require.Len(t, v.Quantities, 7)
	assert.Equal(t, QuantityPoint{Name: "Laptops", Quantity: 15}, v.Quantities[0])
	assert.Equal(t, QuantityPoint{Name: "Mice", Quantity: 9}, v.Quantities[6])
}

func TestTrends_ReflectsInputEachCall(t *testing.T) {
	items := []models.InventoryItem{{Name: "Widget", Quantity: 3, Category: "X"}}
	first := Trends(items)
	assert.Equal(t, 1, first.Stock.Low)

	items[0].Quantity = 30
	second := Trends(items)
	assert.Equal(t, 0, second.Stock.Low)
	assert.Equal(t, 1, second.Stock.High)
}
