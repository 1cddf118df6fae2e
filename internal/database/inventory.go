package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"gorm.io/gorm"
)

// InventoryStore persists inventory rows.
type InventoryStore struct {
	db *gorm.DB
}

func NewInventoryStore(db *gorm.DB) *InventoryStore {
	return &InventoryStore{db: db}
}

func (s *InventoryStore) Create(ctx context.Context, item *models.InventoryItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// List returns every item in insertion order.
func (s *InventoryStore) List(ctx context.Context) ([]models.InventoryItem, error) {
	items := []models.InventoryItem{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryStore) FindByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if isNoRows(err) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, fmt.Errorf("query inventory item: %w", err)
	}
	return &item, nil
}

// Delete removes the item and returns what was removed. When two callers
// race on the same id only the one whose DELETE affects a row succeeds;
// the other gets ErrNotFound.
func (s *InventoryStore) Delete(ctx context.Context, id uint) (*models.InventoryItem, error) {
	item, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return nil, fmt.Errorf("delete inventory item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *InventoryStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.InventoryItem{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count inventory: %w", err)
	}
	return n, nil
}
