package services

import (
	"context"
	"fmt"

	"github.com/capsule-retail/inventory-dashboard/internal/models"
	"github.com/capsule-retail/inventory-dashboard/internal/stock"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
	dashboardRecent      = 10
)

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

type ActivityReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.Activity, error)
	Count(ctx context.Context) (int64, error)
}

// DashboardService backs the admin dashboard.
type DashboardService struct {
	users    UserCounter
	items    ItemLister
	activity ActivityReader
}

func NewDashboardService(users UserCounter, items ItemLister, activity ActivityReader) *DashboardService {
	return &DashboardService{users: users, items: items, activity: activity}
}

type DashboardStats struct {
	TotalUsers     int64             `json:"totalUsers"`
	AdminUsers     int64             `json:"adminUsers"`
	TotalItems     int               `json:"totalItems"`
	TotalQuantity  int               `json:"totalQuantity"`
	InventoryValue float64           `json:"inventoryValue"`
	TotalActivity  int64             `json:"totalActivity"`
	Stock          stock.Counts      `json:"stock"`
	RecentActivity []models.Activity `json:"recentActivity"`
}

func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var st DashboardStats
	var err error

	if st.TotalUsers, err = s.users.Count(ctx); err != nil {
		return st, fmt.Errorf("dashboard stats: %w", err)
	}
	if st.AdminUsers, err = s.users.CountByRole(ctx, models.RoleAdmin); err != nil {
		return st, fmt.Errorf("dashboard stats: %w", err)
	}
	if st.TotalActivity, err = s.activity.Count(ctx); err != nil {
		return st, fmt.Errorf("dashboard stats: %w", err)
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard stats: %w", err)
	}
	st.TotalItems = len(items)
	for _, item := range items {
		st.TotalQuantity += item.Quantity
		st.InventoryValue += float64(item.Quantity) * item.Price
	}
	st.Stock = stock.Classify(items).Counts()

	if st.RecentActivity, err = s.activity.ListRecent(ctx, dashboardRecent); err != nil {
		return st, fmt.Errorf("dashboard stats: %w", err)
	}
	return st, nil
}

// RecentActivity clamps limit to [1, MaxActivityLimit]; zero or negative
// means DefaultActivityLimit.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}
	return s.activity.ListRecent(ctx, limit)
}
