package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/models"

	"gorm.io/gorm"
)

// UserStore persists user accounts. Users are never deleted here.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts the user and fills in its generated ID.
// Returns ErrDuplicate when the username is taken.
func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.Join(ErrDuplicate, err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByUsername returns ErrNotFound when no user has that username.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if isNoRows(err) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if isNoRows(err) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *UserStore) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", at)
	if res.Error != nil {
		return fmt.Errorf("update last login: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (s *UserStore) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}
