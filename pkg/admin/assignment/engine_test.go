// FILE: pkg/admin/assignment/engine_test.go
package assignment

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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:assignment_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.SubscriptionPlan{},
		&model.Category{},
		&model.DisplayFeature{},
		&model.SystemFeature{},
		&model.Character{},
		&model.PlanFeatureAssignment{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

type testFixture struct {
	db           *gorm.DB
	uow          unitofwork.UnitOfWork
	planId       uuid.UUID
	displayIds   []uuid.UUID
	boolFeature  uuid.UUID
	limitFeature uuid.UUID
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()
	db := newTestDB(t)

	planId := uuid.New()
	if err := db.Create(&model.SubscriptionPlan{Id: planId, Name: "Pro", Slug: "pro", IsActive: true}).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	category := model.Category{Id: uuid.New(), Name: "Conversations", DisplayOrder: 1}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	displayIds := []uuid.UUID{uuid.New(), uuid.New()}
	for i, id := range displayIds {
		feature := model.DisplayFeature{Id: id, CategoryId: category.Id, Name: fmt.Sprintf("Feature %d", i+1), DisplayOrder: i + 1}
		if err := db.Create(&feature).Error; err != nil {
			t.Fatalf("seed display feature: %v", err)
		}
	}

	boolFeature := uuid.New()
	if err := db.Create(&model.SystemFeature{
		Id: boolFeature, Key: "nsfw_enabled", Name: "NSFW Content", Type: "boolean",
		DefaultValue: datatypes.JSON([]byte(`false`)),
	}).Error; err != nil {
		t.Fatalf("seed system feature: %v", err)
	}

	limitFeature := uuid.New()
	if err := db.Create(&model.SystemFeature{
		Id: limitFeature, Key: "daily_message_limit", Name: "Daily Message Limit", Type: "limit",
		DefaultValue: datatypes.JSON([]byte(`50`)),
	}).Error; err != nil {
		t.Fatalf("seed system feature: %v", err)
	}

	for _, c := range []model.Character{
		{Id: "char-1", Name: "Luna", IsActive: true},
		{Id: "char-2", Name: "Atlas", IsActive: true},
	} {
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed character: %v", err)
		}
	}

	return &testFixture{
		db:           db,
		uow:          unitofwork.NewUnitOfWork(db),
		planId:       planId,
		displayIds:   displayIds,
		boolFeature:  boolFeature,
		limitFeature: limitFeature,
	}
}

func validRequest(f *testFixture) dto.AssignPlanFeaturesRequest {
	return dto.AssignPlanFeaturesRequest{
		DisplayFeatureIds: f.displayIds,
		SystemFeatureValues: map[uuid.UUID]interface{}{
			f.boolFeature:  true,
			f.limitFeature: "unlimited",
		},
		CharacterLimits: map[string]dto.CharacterLimitInput{
			"char-1": {MessageLimit: float64(100), TokenLimit: "unlimited", Priority: 1},
			"char-2": {MessageLimit: float64(0), TokenLimit: float64(5000), Priority: 2},
		},
	}
}

func TestAssignPlanFeatures_RoundTrip(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()
	ctx := context.Background()

	saved, err := engine.AssignPlanFeatures(ctx, f.uow, f.planId, validRequest(f))
	assert.NoError(t, err)
	assert.Equal(t, f.planId, saved.PlanId)
	assert.Len(t, saved.Bundle.DisplayFeatureIds, 2)
	assert.Equal(t, entity.Limited(100), saved.Bundle.CharacterLimits["char-1"].MessageLimit)
	assert.True(t, saved.Bundle.CharacterLimits["char-1"].TokenLimit.Unlimited)
	// Zero is a real cap, not unlimited.
	assert.True(t, saved.Bundle.CharacterLimits["char-2"].MessageLimit.IsZero())

	stored, err := engine.GetAssignment(ctx, f.uow, f.planId)
	assert.NoError(t, err)
	assert.ElementsMatch(t, f.displayIds, stored.Bundle.DisplayFeatureIds)
	assert.Equal(t, true, stored.Bundle.SystemFeatureValues[f.boolFeature])
	assert.Equal(t, "unlimited", stored.Bundle.SystemFeatureValues[f.limitFeature])
	assert.Equal(t, 2, stored.Bundle.CharacterLimits["char-2"].Priority)
	assert.Equal(t, entity.Limited(5000), stored.Bundle.CharacterLimits["char-2"].TokenLimit)
}

func TestAssignPlanFeatures_ReplacesWholesale(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()
	ctx := context.Background()

	_, err := engine.AssignPlanFeatures(ctx, f.uow, f.planId, validRequest(f))
	assert.NoError(t, err)

	smaller := dto.AssignPlanFeaturesRequest{
		DisplayFeatureIds: f.displayIds[:1],
		CharacterLimits: map[string]dto.CharacterLimitInput{
			"char-1": {MessageLimit: float64(10), TokenLimit: float64(10), Priority: 0},
		},
	}
	_, err = engine.AssignPlanFeatures(ctx, f.uow, f.planId, smaller)
	assert.NoError(t, err)

	stored, err := engine.GetAssignment(ctx, f.uow, f.planId)
	assert.NoError(t, err)
	assert.Len(t, stored.Bundle.DisplayFeatureIds, 1)
	assert.Empty(t, stored.Bundle.SystemFeatureValues)
	assert.Len(t, stored.Bundle.CharacterLimits, 1)
}

func TestAssignPlanFeatures_InvalidPartRejectsWholeBundle(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()
	ctx := context.Background()

	req := validRequest(f)
	req.DisplayFeatureIds = append(req.DisplayFeatureIds, uuid.New()) // unknown id

	_, err := engine.AssignPlanFeatures(ctx, f.uow, f.planId, req)
	assert.True(t, apperrors.IsValidation(err))

	// Nothing was persisted for the plan.
	stored, err := f.uow.AssignmentRepository().FindByPlan(ctx, f.planId)
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAssignPlanFeatures_AggregatesFieldErrors(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()
	ctx := context.Background()

	req := dto.AssignPlanFeaturesRequest{
		SystemFeatureValues: map[uuid.UUID]interface{}{
			f.boolFeature: "yes", // not a boolean
		},
		CharacterLimits: map[string]dto.CharacterLimitInput{
			"char-1": {MessageLimit: float64(-5), TokenLimit: "unlimited", Priority: 1},
			"ghost":  {MessageLimit: float64(1), TokenLimit: float64(1), Priority: 1},
			"char-2": {MessageLimit: float64(1), TokenLimit: float64(1), Priority: 2000},
		},
	}

	_, err := engine.AssignPlanFeatures(ctx, f.uow, f.planId, req)
	assert.Error(t, err)

	ve, ok := err.(*apperrors.ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	fields := make(map[string]string, len(ve.Fields))
	for _, fe := range ve.Fields {
		fields[fe.Field] = fe.Reason
	}
	assert.Contains(t, fields, f.boolFeature.String())
	assert.Contains(t, fields, "char-1.message_limit")
	assert.Contains(t, fields, "char-2.priority")
	assert.Contains(t, fields, "ghost")
}

func TestAssignPlanFeatures_DuplicateDisplayIds(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()

	req := dto.AssignPlanFeaturesRequest{
		DisplayFeatureIds: []uuid.UUID{f.displayIds[0], f.displayIds[0]},
	}
	_, err := engine.AssignPlanFeatures(context.Background(), f.uow, f.planId, req)
	assert.Error(t, err)

	ve, ok := err.(*apperrors.ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	assert.Equal(t, "display_feature_ids[1]", ve.Fields[0].Field)
}

func TestAssignPlanFeatures_PlanNotFound(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()

	_, err := engine.AssignPlanFeatures(context.Background(), f.uow, uuid.New(), validRequest(f))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetAssignment_UnassignedPlanReadsEmpty(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()

	stored, err := engine.GetAssignment(context.Background(), f.uow, f.planId)
	assert.NoError(t, err)
	assert.Equal(t, f.planId, stored.PlanId)
	assert.Empty(t, stored.Bundle.DisplayFeatureIds)
	assert.Empty(t, stored.Bundle.SystemFeatureValues)
	assert.Empty(t, stored.Bundle.CharacterLimits)
}

func TestClearAssignment(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()
	ctx := context.Background()

	_, err := engine.AssignPlanFeatures(ctx, f.uow, f.planId, validRequest(f))
	assert.NoError(t, err)

	assert.NoError(t, engine.ClearAssignment(ctx, f.uow, f.planId))

	stored, err := f.uow.AssignmentRepository().FindByPlan(ctx, f.planId)
	assert.NoError(t, err)
	assert.Nil(t, stored)

	// Clearing an already-empty plan is allowed; the plan must exist.
	assert.NoError(t, engine.ClearAssignment(ctx, f.uow, f.planId))
	assert.True(t, apperrors.IsNotFound(engine.ClearAssignment(ctx, f.uow, uuid.New())))
}

func TestPreviewRanking_OrdersByPriorityThenId(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine()

	if err := f.db.Create(&model.Character{Id: "char-0", Name: "Sage", IsActive: true}).Error; err != nil {
		t.Fatalf("seed character: %v", err)
	}

	req := dto.AssignPlanFeaturesRequest{
		CharacterLimits: map[string]dto.CharacterLimitInput{
			"char-2": {MessageLimit: float64(10), TokenLimit: float64(10), Priority: 1},
			"char-0": {MessageLimit: float64(10), TokenLimit: float64(10), Priority: 1},
			"char-1": {MessageLimit: "unlimited", TokenLimit: "unlimited", Priority: 0},
		},
	}

	ranks, err := engine.PreviewRanking(context.Background(), f.uow, f.planId, req)
	assert.NoError(t, err)
	assert.Len(t, ranks, 3)
	assert.Equal(t, "char-1", ranks[0].CharacterId)
	assert.Equal(t, "char-0", ranks[1].CharacterId)
	assert.Equal(t, "char-2", ranks[2].CharacterId)

	// Preview never persists.
	stored, err := f.uow.AssignmentRepository().FindByPlan(context.Background(), f.planId)
	assert.NoError(t, err)
	assert.Nil(t, stored)
}
