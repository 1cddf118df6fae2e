package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/models"
	"github.com/capsule-retail/inventory-dashboard/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SeedOptions struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	BcryptCost    int

	// SampleData adds demo users, the sample inventory and a starting
	// activity trail.
	SampleData bool
}

type seedUser struct {
	Username string
	Email    string
	Password string
}

var demoUsers = []seedUser{
	{Username: "john_doe", Email: "john@example.com", Password: "password123"},
	{Username: "jane_smith", Email: "jane@example.com", Password: "password123"},
	{Username: "demo_user", Email: "demo@example.com", Password: "demo123"},
}

var sampleInventory = []models.InventoryItem{
	{Name: "Laptop Computers", Quantity: 15, Price: 999.99, Category: "Electronics", Supplier: "Tech Supplier Inc"},
	{Name: "Office Chairs", Quantity: 8, Price: 199.50, Category: "Furniture", Supplier: "Office Depot"},
	{Name: "Wireless Mice", Quantity: 3, Price: 25.99, Category: "Electronics", Supplier: "Tech Supplier Inc"},
	{Name: "Desk Lamps", Quantity: 25, Price: 45.00, Category: "Furniture", Supplier: "Furniture World"},
	{Name: "USB Keyboards", Quantity: 12, Price: 35.75, Category: "Electronics", Supplier: "Tech Supplier Inc"},
	{Name: "Coffee Makers", Quantity: 2, Price: 89.99, Category: "Appliances", Supplier: "Home Essentials"},
	{Name: "Printer Paper", Quantity: 30, Price: 15.99, Category: "Office Supplies", Supplier: "Paper Co"},
	{Name: "Bluetooth Speakers", Quantity: 7, Price: 79.99, Category: "Electronics", Supplier: "Audio Tech"},
	{Name: "Standing Desks", Quantity: 4, Price: 299.99, Category: "Furniture", Supplier: "Ergonomic Solutions"},
	{Name: "Water Bottles", Quantity: 50, Price: 12.99, Category: "Office Supplies", Supplier: "Eco Products"},
	{Name: "Tablets", Quantity: 1, Price: 599.99, Category: "Electronics", Supplier: "Tech Supplier Inc"},
	{Name: "Monitor Stands", Quantity: 20, Price: 89.50, Category: "Furniture", Supplier: "Office Depot"},
	{Name: "Webcams", Quantity: 9, Price: 149.99, Category: "Electronics", Supplier: "Audio Tech"},
	{Name: "Desk Organizers", Quantity: 35, Price: 19.99, Category: "Office Supplies", Supplier: "Paper Co"},
	{Name: "Phone Chargers", Quantity: 4, Price: 29.99, Category: "Electronics", Supplier: "Tech Supplier Inc"},
}

// Seed creates the default admin when no admin exists and, if asked, the
// demo accounts and sample inventory. It is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions) error {
	log := logger.Component("database.seed")
	users := NewUserStore(db)

	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	admins, err := users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if admins == 0 {
		created, err := createSeedUser(ctx, users, seedUser{
			Username: opts.AdminUsername,
			Email:    opts.AdminEmail,
			Password: opts.AdminPassword,
		}, models.RoleAdmin, opts.BcryptCost)
		if err != nil {
			return fmt.Errorf("failed to create default admin: %w", err)
		}
		if created {
			log.Info().Str("username", opts.AdminUsername).Msg("created default admin user")
		}
	}

	if !opts.SampleData {
		return nil
	}

	for _, u := range demoUsers {
		created, err := createSeedUser(ctx, users, u, models.RoleUser, opts.BcryptCost)
		if err != nil {
			log.Warn().Err(err).Str("username", u.Username).Msg("failed to create seed user")
			continue
		}
		if created {
			log.Info().Str("username", u.Username).Msg("created seed user")
		}
	}

	inventory := NewInventoryStore(db)
	count, err := inventory.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count inventory: %w", err)
	}
	if count < 10 {
		if count > 0 {
			if err := db.WithContext(ctx).Where("1 = 1").Delete(&models.InventoryItem{}).Error; err != nil {
				return fmt.Errorf("failed to clear inventory: %w", err)
			}
		}
		for _, item := range sampleInventory {
			item := item
			if err := inventory.Create(ctx, &item); err != nil {
				return fmt.Errorf("failed to seed inventory: %w", err)
			}
		}
		log.Info().Int("items", len(sampleInventory)).Msg("seeded sample inventory")
	}

	added, err := seedActivity(ctx, db, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to seed activity: %w", err)
	}
	if added > 0 {
		log.Info().Int("entries", added).Msg("seeded sample activity")
	}

	return nil
}

// seedActivity gives every user a past LOGIN, and non-admins an
// INVENTORY_ADD and INVENTORY_DELETE, spread over the day before now. It
// does nothing once the trail has any entry.
func seedActivity(ctx context.Context, db *gorm.DB, now time.Time) (int, error) {
	activity := NewActivityStore(db)
	n, err := activity.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	var users []models.User
	if err := db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	added := 0
	for i, u := range users {
		at := now.Add(-time.Duration(i+1) * time.Hour)
		entries := []models.Activity{
			{UserID: u.ID, Type: models.ActivityLogin, Description: "User " + u.Username + " logged in", CreatedAt: at},
		}
		if !u.Role.IsAdmin() {
			entries = append(entries,
				models.Activity{UserID: u.ID, Type: models.ActivityInventoryAdd, Description: "Added new inventory item", CreatedAt: at.Add(-20 * time.Minute)},
				models.Activity{UserID: u.ID, Type: models.ActivityInventoryDelete, Description: "Removed inventory item", CreatedAt: at.Add(-40 * time.Minute)},
			)
		}
		for j := range entries {
			if err := activity.Append(ctx, &entries[j]); err != nil {
				return added, err
			}
			added++
		}
	}
	return added, nil
}

// createSeedUser reports false when the username already exists.
func createSeedUser(ctx context.Context, users *UserStore, u seedUser, role models.Role, cost int) (bool, error) {
	if _, err := users.FindByUsername(ctx, u.Username); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
