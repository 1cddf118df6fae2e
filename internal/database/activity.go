package database

import (
	"context"
	"fmt"

	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"gorm.io/gorm"
)

// ActivityStore appends to and reads the user activity trail.
type ActivityStore struct {
	db *gorm.DB
}

func NewActivityStore(db *gorm.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) Append(ctx context.Context, a *models.Activity) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first, with usernames
// joined in where the user still exists.
func (s *ActivityStore) ListRecent(ctx context.Context, limit int) ([]models.Activity, error) {
	entries := []models.Activity{}
	err := s.db.WithContext(ctx).
		Table("user_activity").
		Select("user_activity.*, users.username AS username").
		Joins("LEFT JOIN users ON users.id = user_activity.user_id").
		Order("user_activity.created_at desc, user_activity.id desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}

func (s *ActivityStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Activity{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count activity: %w", err)
	}
	return n, nil
}
