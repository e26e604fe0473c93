package main

import (
	"log"
	"os"

	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do perfectly)
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		// Extensions
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN CREATE TYPE user_role AS ENUM ('admin', 'reviewer', 'fulfiller'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status') THEN CREATE TYPE user_status AS ENUM ('active', 'blocked'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'points_transaction_type') THEN CREATE TYPE points_transaction_type AS ENUM ('earn_purchase', 'earn_review', 'earn_signup', 'redeem', 'adjustment'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Discount{},
		&model.Warehouse{},
		&model.StockLevel{},
		&model.DeliveryAgent{},
		&model.DeliveryAssignment{},
		&model.ReturnRequest{},
		&model.ReturnItem{},
		&model.ReturnAppeal{},
		&model.RewardSystemConfig{},
		&model.RewardRange{},
		&model.PointsLedgerEntry{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views & Functions
	log.Println("Step 3: Creating Views and Functions...")

	postMigrationSQL := []string{
		// Function: set_current_timestamp_updated_at
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,

		// View: customer_points_balances
		`CREATE OR REPLACE VIEW customer_points_balances AS
		 SELECT customer_id, COALESCE(SUM(points), 0) AS balance, MAX(created_at) AS last_activity_at
		 FROM points_ledger_entries
		 GROUP BY customer_id;`,

		// View: order_return_history
		`CREATE OR REPLACE VIEW order_return_history AS
		 SELECT o.id AS order_id, o.order_number, o.status AS order_status,
		        rr.id AS return_id, rr.status AS return_status, rr.submitted_at,
		        (SELECT COALESCE(SUM(ri.unit_price * ri.return_quantity), 0) FROM return_items ri WHERE ri.return_request_id = rr.id) AS refund_amount
		 FROM orders o
		 JOIN return_requests rr ON rr.order_id = o.id
		 ORDER BY rr.submitted_at DESC;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
