// FILE: cmd/migrate/main.go
package main

import (
	"log"
	"os"

	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/pkg/database"

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

	// 3. Pre-Migration: Extensions (uuid generation for primary keys)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.AdminUser{},
		&model.Category{},
		&model.DisplayFeature{},
		&model.SystemFeature{},
		&model.SubscriptionPlan{},
		&model.Character{},
		&model.PlanFeatureAssignment{},
		&model.AiModel{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views
	log.Println("Step 3: Creating Views...")

	postMigrationSQL := []string{
		// View: plan_entitlements joins assignments with plan metadata for
		// read-side consumers that only need the resolved bundle.
		`CREATE OR REPLACE VIEW plan_entitlements AS
		 SELECT sp.id AS plan_id, sp.name AS plan_name, sp.slug, sp.is_active,
		        pfa.display_feature_ids, pfa.system_feature_values, pfa.character_limits, pfa.updated_at
		 FROM subscription_plans sp
		 LEFT JOIN plan_feature_assignments pfa ON pfa.plan_id = sp.id;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
