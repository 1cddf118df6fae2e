package services

import (
	"context"
	"errors"
	"testing"

	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticItems []models.InventoryItem

func (s staticItems) List(context.Context) ([]models.InventoryItem, error) {
	return s, nil
}

type brokenItems struct{}

func (brokenItems) List(context.Context) ([]models.InventoryItem, error) {
	return nil, errors.New("connection refused")
}

func TestChatbot_Reply(t *testing.T) {
	bot := NewChatbot(staticItems{
		{Name: "Wireless Mice", Quantity: 3},
		{Name: "Tablets", Quantity: 1},
		{Name: "Printer Paper", Quantity: 50},
		{Name: "Chairs", Quantity: 10},
	})
	ctx := context.Background()

	reply, err := bot.Reply(ctx, "How do I REORDER stuff?")
	require.NoError(t, err)
	assert.Equal(t, replyReorder, reply)

	reply, err = bot.Reply(ctx, "what is low stock today")
	require.NoError(t, err)
	assert.Contains(t, reply, "Wireless Mice, Tablets")
	assert.NotContains(t, reply, "Chairs")

	reply, err = bot.Reply(ctx, "anything overstocked?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Printer Paper")

	reply, err = bot.Reply(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, replyFallback, reply)
}

func TestChatbot_NothingLow(t *testing.T) {
	bot := NewChatbot(staticItems{{Name: "Chairs", Quantity: 10}})

	reply, err := bot.Reply(context.Background(), "low stock?")
	require.NoError(t, err)
	assert.Equal(t, replyNoLow, reply)

	reply, err = bot.Reply(context.Background(), "high stock?")
	require.NoError(t, err)
	assert.Equal(t, replyNoHigh, reply)
}

func TestChatbot_Errors(t *testing.T) {
	_, err := NewChatbot(staticItems{}).Reply(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)

	// rules that need no data still answer when the ledger is down
	reply, err := NewChatbot(brokenItems{}).Reply(context.Background(), "reorder")
	require.NoError(t, err)
	assert.Equal(t, replyReorder, reply)

	_, err = NewChatbot(brokenItems{}).Reply(context.Background(), "low stock")
	assert.Error(t, err)
}
