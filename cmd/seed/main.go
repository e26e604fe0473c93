package main

import (
	"log"
	"os"

	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding initial admin account...")

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@shopsphere.local"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using the default dev password")
	}

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: Failed to hash admin password: %v", err)
		}
		hashStr := string(hash)

		admin := model.User{
			Email:        adminEmail,
			PasswordHash: &hashStr,
			FullName:     "ShopSphere Admin",
			Role:         "admin",
			Status:       "active",
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Error: Failed to create admin user: %v", err)
		}
		color.Green("Created admin user: %s", adminEmail)
	}

	color.Cyan("Seeding default reward configuration...")

	var count int64
	db.Model(&model.RewardSystemConfig{}).Count(&count)
	if count > 0 {
		color.Yellow("Reward configurations already present, skipping...")
	} else {
		unbounded := func(v float64) *float64 { return &v }

		cfg := model.RewardSystemConfig{
			PointValue:              0.01,
			IsSystemEnabled:         true,
			IsPurchasePointsEnabled: true,
			IsAmountBasedEnabled:    true,
			IsActive:                true,
			RewardRanges: []model.RewardRange{
				{RangeType: "amount", MinValue: 0, MaxValue: unbounded(49.99), Points: 10, Description: "Small orders"},
				{RangeType: "amount", MinValue: 50, MaxValue: unbounded(199.99), Points: 50, Description: "Medium orders"},
				{RangeType: "amount", MinValue: 200, MaxValue: nil, Points: 250, Description: "Large orders"},
			},
		}
		if err := db.Create(&cfg).Error; err != nil {
			log.Fatalf("Error: Failed to create reward configuration: %v", err)
		}
		color.Green("Created active reward configuration with %d amount ranges", len(cfg.RewardRanges))
	}

	color.Green("Seeding completed!")
}
