package services

import (
	"context"
	"testing"

	"github.com/capsule-retail/inventory-dashboard/internal/database"
	"github.com/capsule-retail/inventory-dashboard/internal/metrics"
	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRecorder_Stores(t *testing.T) {
	ctx := context.Background()
	store := database.NewActivityStore(openTestDB(t))
	rec := NewActivityRecorder(store)

	assert.True(t, rec.Record(ctx, 3, models.ActivityLogin, "User logged in: bob"))

	entries, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(3), entries[0].UserID)
	assert.Equal(t, models.ActivityLogin, entries[0].Type)
	assert.Equal(t, "User logged in: bob", entries[0].Description)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestActivityRecorder_SwallowsFailure(t *testing.T) {
	w := &failingWriter{}
	rec := NewActivityRecorder(w)
	before := testutil.ToFloat64(metrics.ActivityRecordFailures)

	assert.False(t, rec.Record(context.Background(), 1, models.ActivityLogout, "x"))
	assert.Equal(t, 1, w.Calls())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActivityRecordFailures))
}

func TestActivityRecorder_CancelledRequest(t *testing.T) {
	w := &memoryWriter{}
	rec := NewActivityRecorder(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, rec.Record(ctx, 1, models.ActivityInventoryAdd, "Added Widget"))
	assert.Equal(t, []models.ActivityType{models.ActivityInventoryAdd}, w.Types())
}
