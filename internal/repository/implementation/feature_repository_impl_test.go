// FILE: internal/repository/implementation/feature_repository_impl_test.go
package implementation

import (
	"context"
	"fmt"
	"testing"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/model"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Category{},
		&model.SystemFeature{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestSystemFeatureRepository_NumericDefaultSurvivesReadback(t *testing.T) {
	db := newTestDB(t)
	repo := NewSystemFeatureRepository(db)
	ctx := context.Background()

	feature := &entity.SystemFeature{
		Key:          "daily_message_limit",
		Name:         "Daily Message Limit",
		Type:         entity.FeatureTypeLimit,
		DefaultValue: entity.Limited(50),
	}
	err := repo.Create(ctx, feature)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, feature.Id)
	assert.Equal(t, entity.Limited(50), feature.DefaultValue)

	stored, err := repo.FindByKey(ctx, "daily_message_limit")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, entity.Limited(50), stored.DefaultValue)
}

func TestSystemFeatureRepository_SentinelDefaultSurvivesReadback(t *testing.T) {
	db := newTestDB(t)
	repo := NewSystemFeatureRepository(db)
	ctx := context.Background()

	feature := &entity.SystemFeature{
		Key:          "context_window",
		Name:         "Context Window",
		Type:         entity.FeatureTypeLimit,
		DefaultValue: entity.Unlimited(),
	}
	err := repo.Create(ctx, feature)
	assert.NoError(t, err)

	stored, err := repo.FindByKey(ctx, "context_window")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, entity.Unlimited(), stored.DefaultValue)
}

func TestSystemFeatureRepository_ListDefaultStaysTyped(t *testing.T) {
	db := newTestDB(t)
	repo := NewSystemFeatureRepository(db)
	ctx := context.Background()

	feature := &entity.SystemFeature{
		Key:           "voice_quality",
		Name:          "Voice Quality",
		Type:          entity.FeatureTypeList,
		DefaultValue:  []string{"standard"},
		AllowedValues: []string{"standard", "premium"},
	}
	err := repo.Create(ctx, feature)
	assert.NoError(t, err)
	assert.Equal(t, []string{"standard"}, feature.DefaultValue)

	feature.DefaultValue = []string{"premium"}
	err = repo.Update(ctx, feature)
	assert.NoError(t, err)
	assert.Equal(t, []string{"premium"}, feature.DefaultValue)
	assert.Equal(t, []string{"standard", "premium"}, feature.AllowedValues)

	stored, err := repo.FindByKey(ctx, "voice_quality")
	assert.NoError(t, err)
	assert.Equal(t, []string{"premium"}, stored.DefaultValue)
	assert.Equal(t, []string{"standard", "premium"}, stored.AllowedValues)
}

func TestCategoryRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &entity.Category{
		Name:         "Core Experience",
		Description:  "Day to day chat capabilities",
		DisplayOrder: 1,
	}
	err := repo.Create(ctx, category)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.Id)

	stored, err := repo.FindByName(ctx, "Core Experience")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, category.Id, stored.Id)
	assert.Equal(t, "Day to day chat capabilities", stored.Description)
	assert.Equal(t, 1, stored.DisplayOrder)
}
