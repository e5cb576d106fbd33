// FILE: pkg/admin/pricing/manager_test.go
package pricing

import (
	"context"
	"fmt"
	"testing"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/pkg/apperrors"
	"ai-character-admin-be/internal/repository/unitofwork"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestUow(t *testing.T) (unitofwork.UnitOfWork, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:pricing_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.AiModel{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return unitofwork.NewUnitOfWork(db), db
}

func seedModel(t *testing.T, db *gorm.DB, modelId string) {
	t.Helper()
	m := model.AiModel{
		Id:            uuid.New(),
		ModelId:       modelId,
		Name:          modelId,
		PricingInput:  decimal.RequireFromString("1.000000"),
		PricingOutput: decimal.RequireFromString("2.000000"),
		IsActive:      true,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed model: %v", err)
	}
}

func TestUpdateModelPricing_WritesBothPrices(t *testing.T) {
	uow, db := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()
	seedModel(t, db, "gpt-4o-mini")

	updated, err := manager.UpdateModelPricing(ctx, uow, "gpt-4o-mini", dto.UpdateModelPricingRequest{
		PricingInput:  "0.150000",
		PricingOutput: "0.600000",
	})
	assert.NoError(t, err)
	assert.True(t, updated.PricingInput.Equal(decimal.RequireFromString("0.15")))
	assert.True(t, updated.PricingOutput.Equal(decimal.RequireFromString("0.6")))

	stored, err := uow.AiModelRepository().FindByModelId(ctx, "gpt-4o-mini")
	assert.NoError(t, err)
	assert.True(t, stored.PricingInput.Equal(decimal.RequireFromString("0.15")))
	assert.True(t, stored.PricingOutput.Equal(decimal.RequireFromString("0.6")))
}

func TestUpdateModelPricing_ZeroIsValid(t *testing.T) {
	uow, db := newTestUow(t)
	manager := NewManager()
	seedModel(t, db, "free-model")

	updated, err := manager.UpdateModelPricing(context.Background(), uow, "free-model", dto.UpdateModelPricingRequest{
		PricingInput:  "0",
		PricingOutput: "0",
	})
	assert.NoError(t, err)
	assert.True(t, updated.PricingInput.IsZero())
}

func TestUpdateModelPricing_RejectsInvalidInput(t *testing.T) {
	uow, db := newTestUow(t)
	manager := NewManager()
	ctx := context.Background()
	seedModel(t, db, "gpt-4o-mini")

	cases := []struct {
		name  string
		req   dto.UpdateModelPricingRequest
		field string
	}{
		{"negative", dto.UpdateModelPricingRequest{PricingInput: "-0.10", PricingOutput: "0.60"}, "pricing_input"},
		{"not a number", dto.UpdateModelPricingRequest{PricingInput: "cheap", PricingOutput: "0.60"}, "pricing_input"},
		{"too many fractional digits", dto.UpdateModelPricingRequest{PricingInput: "0.15", PricingOutput: "0.1234567"}, "pricing_output"},
		{"missing", dto.UpdateModelPricingRequest{PricingInput: "", PricingOutput: "0.60"}, "pricing_input"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manager.UpdateModelPricing(ctx, uow, "gpt-4o-mini", tc.req)
			ve, ok := err.(*apperrors.ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			assert.Equal(t, tc.field, ve.Fields[0].Field)

			// The stored prices stay untouched.
			stored, err := uow.AiModelRepository().FindByModelId(ctx, "gpt-4o-mini")
			assert.NoError(t, err)
			assert.True(t, stored.PricingInput.Equal(decimal.RequireFromString("1")))
			assert.True(t, stored.PricingOutput.Equal(decimal.RequireFromString("2")))
		})
	}
}

func TestUpdateModelPricing_AggregatesBothFields(t *testing.T) {
	uow, db := newTestUow(t)
	manager := NewManager()
	seedModel(t, db, "gpt-4o-mini")

	_, err := manager.UpdateModelPricing(context.Background(), uow, "gpt-4o-mini", dto.UpdateModelPricingRequest{
		PricingInput:  "-1",
		PricingOutput: "bogus",
	})
	ve, ok := err.(*apperrors.ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	assert.Len(t, ve.Fields, 2)
}

func TestUpdateModelPricing_UnknownModel(t *testing.T) {
	uow, _ := newTestUow(t)
	manager := NewManager()

	_, err := manager.UpdateModelPricing(context.Background(), uow, "no-such-model", dto.UpdateModelPricingRequest{
		PricingInput:  "0.10",
		PricingOutput: "0.20",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListModels_SortedByModelId(t *testing.T) {
	uow, db := newTestUow(t)
	manager := NewManager()
	seedModel(t, db, "zephyr")
	seedModel(t, db, "atlas")

	models, err := manager.ListModels(context.Background(), uow)
	assert.NoError(t, err)
	assert.Len(t, models, 2)
	assert.Equal(t, "atlas", models[0].ModelId)
	assert.Equal(t, "zephyr", models[1].ModelId)
}
