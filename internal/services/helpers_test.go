package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/capsule-retail/inventory-dashboard/internal/config"
	"github.com/capsule-retail/inventory-dashboard/internal/database"
	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testCost = bcrypt.MinCost

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DBConfig{
		Driver:          "sqlite",
		Path:            filepath.Join(t.TempDir(), "services_test.db"),
		PoolSize:        1,
		ConnectAttempts: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// failingWriter simulates an activity store outage.
type failingWriter struct {
	mu    sync.Mutex
	calls int
}

func (w *failingWriter) Append(context.Context, *models.Activity) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	return errors.New("activity store unavailable")
}

func (w *failingWriter) Calls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

// memoryWriter keeps entries in a slice.
type memoryWriter struct {
	mu      sync.Mutex
	entries []models.Activity
}

func (w *memoryWriter) Append(_ context.Context, a *models.Activity) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, *a)
	return nil
}

func (w *memoryWriter) Types() []models.ActivityType {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.ActivityType, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.Type
	}
	return out
}
