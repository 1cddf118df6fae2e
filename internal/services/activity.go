package services

import (
	"context"

	"github.com/capsule-retail/inventory-dashboard/internal/metrics"
	"github.com/capsule-retail/inventory-dashboard/internal/models"
	"github.com/capsule-retail/inventory-dashboard/pkg/logger"
)

// ActivityWriter is the storage side of the activity trail.
type ActivityWriter interface {
	Append(ctx context.Context, a *models.Activity) error
}

// ActivityRecorder writes audit entries on a best-effort basis. A failed
// write is logged and counted, and never reaches the caller as an error.
type ActivityRecorder struct {
	store ActivityWriter
}

func NewActivityRecorder(store ActivityWriter) *ActivityRecorder {
	return &ActivityRecorder{store: store}
}

// Record appends one entry and reports whether it was stored.
func (r *ActivityRecorder) Record(ctx context.Context, userID uint, typ models.ActivityType, description string) bool {
	// the entry is written even if the request that caused it is gone
	ctx = context.WithoutCancel(ctx)

	err := r.store.Append(ctx, &models.Activity{
		UserID:      userID,
		Type:        typ,
		Description: description,
	})
	if err != nil {
		log := logger.Component("activity")
		log.Error().
			Err(err).
			Uint("user_id", userID).
			Str("activity_type", string(typ)).
			Str("description", description).
			Msg("activity log write failed")
		metrics.ActivityRecordFailures.Inc()
		return false
	}
	return true
}
