package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/capsule-retail/inventory-dashboard/internal/database"
	"github.com/capsule-retail/inventory-dashboard/internal/metrics"
	"github.com/capsule-retail/inventory-dashboard/internal/models"
	"github.com/capsule-retail/inventory-dashboard/internal/session"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	List(ctx context.Context) ([]models.InventoryItem, error)
	Delete(ctx context.Context, id uint) (*models.InventoryItem, error)
}

type InventoryService struct {
	items    InventoryRepository
	recorder *ActivityRecorder
}

func NewInventoryService(items InventoryRepository, recorder *ActivityRecorder) *InventoryService {
	return &InventoryService{items: items, recorder: recorder}
}

type InventoryInput struct {
	Name     string
	Quantity int
	Price    float64
	Category string
	Supplier string
}

func (in InventoryInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return invalid("name is required")
	case in.Quantity < 0:
		return invalid("quantity must not be negative")
	case in.Price < 0:
		return invalid("price must not be negative")
	}
	return nil
}

// Add stores a new item on behalf of actor and returns its id.
func (s *InventoryService) Add(ctx context.Context, actor session.Principal, in InventoryInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	item := &models.InventoryItem{
		Name:     strings.TrimSpace(in.Name),
		Quantity: in.Quantity,
		Price:    in.Price,
		Category: strings.TrimSpace(in.Category),
		Supplier: strings.TrimSpace(in.Supplier),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return 0, err
	}
	metrics.InventoryMutations.WithLabelValues("add").Inc()

	s.recorder.Record(ctx, actor.UserID, models.ActivityInventoryAdd,
		fmt.Sprintf("Added %s (quantity %d)", item.Name, item.Quantity))
	return item.ID, nil
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.items.List(ctx)
}

// Delete removes an item. A second delete of the same id fails with
// ErrItemNotFound.
func (s *InventoryService) Delete(ctx context.Context, actor session.Principal, id uint) error {
	item, err := s.items.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrItemNotFound, id)
		}
		return err
	}
	metrics.InventoryMutations.WithLabelValues("delete").Inc()

	s.recorder.Record(ctx, actor.UserID, models.ActivityInventoryDelete,
		fmt.Sprintf("Deleted %s (id %d)", item.Name, item.ID))
	return nil
}
