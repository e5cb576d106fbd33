// FILE: pkg/admin/catalog/manager_test.go
package catalog

import (
	"context"
	"fmt"
	"testing"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/pkg/apperrors"
	"ai-character-admin-be/internal/repository/unitofwork"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestUow(t *testing.T) (unitofwork.UnitOfWork, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Category{},
		&model.DisplayFeature{},
		&model.SystemFeature{},
		&model.PlanFeatureAssignment{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return unitofwork.NewUnitOfWork(db), db
}

func TestCreateCategory_AppendsToSequence(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	first, err := manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Conversations"})
	assert.NoError(t, err)
	assert.Equal(t, 1, first.DisplayOrder)

	second, err := manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Media"})
	assert.NoError(t, err)
	assert.Equal(t, 2, second.DisplayOrder)

	explicit, err := manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Characters", DisplayOrder: 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, explicit.DisplayOrder)
}

func TestCreateCategory_RejectsDuplicateName(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	_, err := manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Media"})
	assert.NoError(t, err)

	_, err = manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Media"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: ""})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateCategory_DuplicateNameExcludesSelf(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	media, err := manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Media"})
	assert.NoError(t, err)
	_, err = manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Characters"})
	assert.NoError(t, err)

	// Renaming to its own name is a no-op, not a conflict.
	same := "Media"
	_, err = manager.UpdateCategory(ctx, uow, media.Id, dto.UpdateCategoryRequest{Name: &same})
	assert.NoError(t, err)

	taken := "Characters"
	_, err = manager.UpdateCategory(ctx, uow, media.Id, dto.UpdateCategoryRequest{Name: &taken})
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteCategory_BlockedByAttachedFeatures(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	category, err := manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Media"})
	assert.NoError(t, err)

	feature, err := manager.CreateDisplayFeature(ctx, uow, dto.CreateDisplayFeatureRequest{
		CategoryId: category.Id,
		Name:       "Voice replies",
	})
	assert.NoError(t, err)

	err = manager.DeleteCategory(ctx, uow, category.Id)
	assert.True(t, apperrors.IsConflict(err))

	assert.NoError(t, manager.DeleteDisplayFeature(ctx, uow, feature.Id))
	assert.NoError(t, manager.DeleteCategory(ctx, uow, category.Id))
}

func TestCreateDisplayFeature_RequiresExistingCategory(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()

	_, err := manager.CreateDisplayFeature(context.Background(), uow, dto.CreateDisplayFeatureRequest{
		CategoryId: uuid.New(),
		Name:       "Voice replies",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteDisplayFeature_BlockedByAssignment(t *testing.T) {
	uow, db := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	category, err := manager.CreateCategory(ctx, uow, dto.CreateCategoryRequest{Name: "Media"})
	assert.NoError(t, err)
	feature, err := manager.CreateDisplayFeature(ctx, uow, dto.CreateDisplayFeatureRequest{
		CategoryId: category.Id,
		Name:       "Voice replies",
	})
	assert.NoError(t, err)

	// A stored bundle references the feature.
	planId := uuid.New()
	err = db.Create(&model.PlanFeatureAssignment{
		PlanId:            planId,
		DisplayFeatureIds: datatypes.JSON([]byte(fmt.Sprintf(`["%s"]`, feature.Id))),
	}).Error
	assert.NoError(t, err)

	err = manager.DeleteDisplayFeature(ctx, uow, feature.Id)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCreateSystemFeature_Validation(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	created, err := manager.CreateSystemFeature(ctx, uow, dto.CreateSystemFeatureRequest{
		Key: "daily_message_limit", Name: "Daily Message Limit", Type: "limit", DefaultValue: float64(50),
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.Limited(50), created.DefaultValue)

	// Key is unique.
	_, err = manager.CreateSystemFeature(ctx, uow, dto.CreateSystemFeatureRequest{
		Key: "daily_message_limit", Name: "Duplicate", Type: "limit", DefaultValue: float64(1),
	})
	assert.True(t, apperrors.IsValidation(err))

	// Default must type-check against the declared type.
	_, err = manager.CreateSystemFeature(ctx, uow, dto.CreateSystemFeatureRequest{
		Key: "nsfw_enabled", Name: "NSFW", Type: "boolean", DefaultValue: "yes",
	})
	assert.True(t, apperrors.IsValidation(err))

	// Vocabulary only makes sense for list features.
	_, err = manager.CreateSystemFeature(ctx, uow, dto.CreateSystemFeatureRequest{
		Key: "weird", Name: "Weird", Type: "boolean", DefaultValue: true, AllowedValues: []string{"a"},
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = manager.CreateSystemFeature(ctx, uow, dto.CreateSystemFeatureRequest{
		Key: "bad_type", Name: "Bad", Type: "integer", DefaultValue: float64(1),
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateSystemFeature_DefaultRevalidatedAgainstVocabulary(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	created, err := manager.CreateSystemFeature(ctx, uow, dto.CreateSystemFeatureRequest{
		Key: "voice_quality", Name: "Voice Quality", Type: "list",
		DefaultValue:  []interface{}{"premium"},
		AllowedValues: []string{"standard", "premium"},
	})
	assert.NoError(t, err)

	// Narrowing the vocabulary under the stored default is rejected.
	narrowed := []string{"standard"}
	_, err = manager.UpdateSystemFeature(ctx, uow, created.Id, dto.UpdateSystemFeatureRequest{
		AllowedValues: &narrowed,
	})
	assert.True(t, apperrors.IsValidation(err))

	// Narrowing together with a compatible new default is fine.
	updated, err := manager.UpdateSystemFeature(ctx, uow, created.Id, dto.UpdateSystemFeatureRequest{
		AllowedValues: &narrowed,
		DefaultValue:  []interface{}{"standard"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"standard"}, updated.DefaultValue)
}

func TestDeleteSystemFeature_BlockedByAssignment(t *testing.T) {
	uow, db := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()

	created, err := manager.CreateSystemFeature(ctx, uow, dto.CreateSystemFeatureRequest{
		Key: "nsfw_enabled", Name: "NSFW Content", Type: "boolean", DefaultValue: false,
	})
	assert.NoError(t, err)

	err = db.Create(&model.PlanFeatureAssignment{
		PlanId:              uuid.New(),
		SystemFeatureValues: datatypes.JSON([]byte(fmt.Sprintf(`{"%s": true}`, created.Id))),
	}).Error
	assert.NoError(t, err)

	err = manager.DeleteSystemFeature(ctx, uow, created.Id)
	assert.True(t, apperrors.IsConflict(err))
}
