package database

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/lavash/internal/authz"
	"github.com/example/lavash/internal/models"
	"github.com/example/lavash/internal/utils"
)

// Seed inserts a default admin account and a starter menu when the tables are
// empty. Intended for development; gated by SEED_DB.
func Seed(conn *gorm.DB) error {
	if err := seedAdmin(conn); err != nil {
		return err
	}
	return seedMenu(conn)
}

func seedAdmin(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         authz.RoleAdmin,
	}

	if err := conn.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded admin user %s", admin.Email)
	return nil
}

func seedMenu(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{Name: "Classic Burger", Description: "Juicy beef patty with lettuce, tomato, and cheese", Price: decimal.NewFromFloat(12.99), Category: "Main", IsAvailable: true},
		{Name: "Cheese Pizza", Description: "Traditional tomato sauce with mozzarella", Price: decimal.NewFromFloat(14.99), Category: "Main", IsAvailable: true},
		{Name: "Grilled Salmon", Description: "Fresh salmon with asparagus", Price: decimal.NewFromFloat(18.99), Category: "Main", IsAvailable: true},
		{Name: "Caesar Salad", Description: "Romaine lettuce with croutons and parmesan", Price: decimal.NewFromFloat(9.99), Category: "Side", IsAvailable: true},
		{Name: "French Fries", Description: "Crisp, salty and satisfying", Price: decimal.NewFromFloat(9.99), Category: "Side", IsAvailable: true},
		{Name: "Cola", Description: "Refreshing cola drink", Price: decimal.NewFromFloat(2.99), Category: "Drink", IsAvailable: true},
		{Name: "Lemonade", Description: "Freshly squeezed lemonade", Price: decimal.NewFromFloat(3.99), Category: "Drink", IsAvailable: true},
	}

	if err := conn.Create(&items).Error; err != nil {
		return err
	}

	log.Printf("seeded %d menu items", len(items))
	return nil
}
