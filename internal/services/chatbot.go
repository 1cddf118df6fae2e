package services

import (
	"context"
	"strings"

	"github.com/capsule-retail/inventory-dashboard/internal/models"
	"github.com/capsule-retail/inventory-dashboard/internal/stock"
)

const (
	replyReorder  = `To reorder, please go to the inventory section and click the "Reorder" button next to the item.`
	replyFallback = "I'm not sure how to help with that. Try asking about reordering or low stock."
	replyNoLow    = "Good news: nothing is running low right now."
	replyNoHigh   = "No items are overstocked right now."
)

// ItemLister is the read side of the inventory ledger.
type ItemLister interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
}

// Chatbot answers a handful of fixed questions about stock.
type Chatbot struct {
	items ItemLister
}

func NewChatbot(items ItemLister) *Chatbot {
	return &Chatbot{items: items}
}

func (b *Chatbot) Reply(ctx context.Context, message string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(message))
	if q == "" {
		return "", invalid("message is required")
	}

	switch {
	case strings.Contains(q, "reorder"):
		return replyReorder, nil

	case strings.Contains(q, "low stock"):
		buckets, err := b.classify(ctx)
		if err != nil {
			return "", err
		}
		if len(buckets.Low) == 0 {
			return replyNoLow, nil
		}
		return "These items are low on stock: " + joinNames(buckets.Low) +
			". Consider reordering them soon.", nil

	case strings.Contains(q, "high stock"), strings.Contains(q, "overstock"):
		buckets, err := b.classify(ctx)
		if err != nil {
			return "", err
		}
		if len(buckets.High) == 0 {
			return replyNoHigh, nil
		}
		return "These items have high stock: " + joinNames(buckets.High) + ".", nil
	}

	return replyFallback, nil
}

func (b *Chatbot) classify(ctx context.Context) (stock.Buckets, error) {
	items, err := b.items.List(ctx)
	if err != nil {
		return stock.Buckets{}, err
	}
	return stock.Classify(items), nil
}

func joinNames(items []models.InventoryItem) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return strings.Join(names, ", ")
}
