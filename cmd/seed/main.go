// FILE: cmd/seed/main.go
package main

import (
	"log"
	"os"
	"time"

	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
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

	color.Cyan("Seeding admin console data...")

	seedAdminUser(db)
	seedCatalog(db)
	seedPlans(db)
	seedCharacters(db)
	seedModels(db)

	color.Green("✅ Seeding completed!")
}

func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using default dev password")
	}

	var existing model.AdminUser
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin user '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}

	admin := model.AdminUser{
		Email:        email,
		FullName:     "Console Admin",
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}
	color.Green("Created admin user: %s", email)
}

func seedCatalog(db *gorm.DB) {
	categories := []model.Category{
		{Name: "Conversations", Description: "Chat volume and depth", DisplayOrder: 1},
		{Name: "Characters", Description: "Character roster and customization", DisplayOrder: 2},
		{Name: "Media", Description: "Voice and image generation", DisplayOrder: 3},
	}

	categoryIds := map[string]model.Category{}
	for _, c := range categories {
		var existing model.Category
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == nil {
			categoryIds[c.Name] = existing
			color.Yellow("Category '%s' already exists, skipping...", c.Name)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating category '%s': %v", c.Name, err)
			continue
		}
		categoryIds[c.Name] = c
		color.Green("Created category: %s", c.Name)
	}

	displayFeatures := []struct {
		Category    string
		Name        string
		Description string
		Order       int
	}{
		{"Conversations", "Unlimited daily messages", "Chat without daily caps", 1},
		{"Conversations", "Long-term memory", "Characters remember past conversations", 2},
		{"Characters", "Access to all characters", "Every character on the roster", 1},
		{"Characters", "Custom characters", "Build and publish your own characters", 2},
		{"Media", "Voice replies", "Characters answer with generated voice", 1},
	}

	for _, f := range displayFeatures {
		cat, ok := categoryIds[f.Category]
		if !ok {
			continue
		}
		var existing model.DisplayFeature
		if err := db.Where("category_id = ? AND name = ?", cat.Id, f.Name).First(&existing).Error; err == nil {
			continue
		}
		feature := model.DisplayFeature{
			CategoryId:   cat.Id,
			Name:         f.Name,
			Description:  f.Description,
			DisplayOrder: f.Order,
		}
		if err := db.Create(&feature).Error; err != nil {
			log.Printf("Error creating display feature '%s': %v", f.Name, err)
		} else {
			color.Green("Created display feature: %s", f.Name)
		}
	}

	systemFeatures := []model.SystemFeature{
		{Key: "nsfw_enabled", Name: "NSFW Content", Type: "boolean", DefaultValue: datatypes.JSON([]byte(`false`))},
		{Key: "daily_message_limit", Name: "Daily Message Limit", Type: "limit", DefaultValue: datatypes.JSON([]byte(`50`))},
		{Key: "context_window", Name: "Context Window", Type: "limit", DefaultValue: datatypes.JSON([]byte(`"unlimited"`))},
		{Key: "voice_quality", Name: "Voice Quality", Type: "list", DefaultValue: datatypes.JSON([]byte(`"standard"`)), AllowedValues: datatypes.JSON([]byte(`["standard", "premium"]`))},
	}

	for _, f := range systemFeatures {
		var existing model.SystemFeature
		if err := db.Where("key = ?", f.Key).First(&existing).Error; err == nil {
			color.Yellow("System feature '%s' already exists, skipping...", f.Key)
			continue
		}
		if err := db.Create(&f).Error; err != nil {
			log.Printf("Error creating system feature '%s': %v", f.Key, err)
		} else {
			color.Green("Created system feature: %s (%s)", f.Name, f.Key)
		}
	}
}

func seedPlans(db *gorm.DB) {
	plans := []model.SubscriptionPlan{
		{Name: "Free", Slug: "free", IsActive: true},
		{Name: "Plus", Slug: "plus", IsActive: true},
		{Name: "Pro", Slug: "pro", IsActive: true},
	}

	for _, p := range plans {
		var existing model.SubscriptionPlan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", p.Slug, err)
		} else {
			color.Green("Created plan: %s", p.Name)
		}
	}
}

func seedCharacters(db *gorm.DB) {
	characters := []model.Character{
		{Id: "luna", Name: "Luna", IsActive: true},
		{Id: "atlas", Name: "Atlas", IsActive: true},
		{Id: "sage", Name: "Sage", IsActive: true},
		{Id: "nova", Name: "Nova", IsActive: false},
	}

	for _, c := range characters {
		var existing model.Character
		if err := db.Where("id = ?", c.Id).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating character '%s': %v", c.Id, err)
		} else {
			color.Green("Created character: %s", c.Name)
		}
	}
}

func seedModels(db *gorm.DB) {
	now := time.Now().UTC()
	models := []model.AiModel{
		{
			ModelId:       "gpt-4o-mini",
			Name:          "GPT-4o mini",
			PricingInput:  decimal.RequireFromString("0.150000"),
			PricingOutput: decimal.RequireFromString("0.600000"),
			IsActive:      true,
			LastSyncedAt:  &now,
		},
		{
			ModelId:       "claude-3-5-haiku",
			Name:          "Claude 3.5 Haiku",
			PricingInput:  decimal.RequireFromString("0.800000"),
			PricingOutput: decimal.RequireFromString("4.000000"),
			IsActive:      true,
			LastSyncedAt:  &now,
		},
		{
			ModelId:       "llama-3.1-70b",
			Name:          "Llama 3.1 70B",
			PricingInput:  decimal.RequireFromString("0.350000"),
			PricingOutput: decimal.RequireFromString("0.400000"),
			IsActive:      false,
		},
	}

	for _, m := range models {
		var existing model.AiModel
		if err := db.Where("model_id = ?", m.ModelId).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("Error creating model '%s': %v", m.ModelId, err)
		} else {
			color.Green("Created model: %s", m.ModelId)
		}
	}
}
