// FILE: pkg/admin/pricing/manager.go
package pricing

import (
	"context"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/pkg/apperrors"
	"ai-character-admin-be/internal/repository/unitofwork"

	"github.com/shopspring/decimal"
)

// Prices are stored with at most six fractional digits; anything finer
// would be silently rounded by the numeric column, so it is rejected
// up front instead.
const maxPriceExponent = 6

// Manager adjusts per-token pricing on the provider model catalog.
type Manager struct{}

// NewManager creates a new pricing manager
func NewManager() *Manager {
	return &Manager{}
}

// UpdateModelPricing validates and writes both prices for a model in a
// single update. Prices arrive as decimal strings to preserve precision.
func (m *Manager) UpdateModelPricing(ctx context.Context, uow unitofwork.UnitOfWork, modelId string, req dto.UpdateModelPricingRequest) (*entity.AiModel, error) {
	var errs apperrors.Collector

	input, ok := parsePrice(&errs, "pricing_input", req.PricingInput)
	output, ok2 := parsePrice(&errs, "pricing_output", req.PricingOutput)
	if !ok || !ok2 {
		return nil, errs.Err()
	}

	model, err := uow.AiModelRepository().FindByModelId(ctx, modelId)
	if err != nil {
		return nil, apperrors.WrapPersistence("model lookup", err)
	}
	if model == nil {
		return nil, apperrors.NewNotFoundError("model", modelId)
	}

	if err := uow.AiModelRepository().UpdatePricing(ctx, modelId, input, output); err != nil {
		return nil, apperrors.WrapPersistence("pricing update", err)
	}

	model.PricingInput = input
	model.PricingOutput = output
	return model, nil
}

// ListModels returns the provider model catalog sorted by model id.
func (m *Manager) ListModels(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.AiModel, error) {
	models, err := uow.AiModelRepository().FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapPersistence("model listing", err)
	}
	return models, nil
}

func parsePrice(errs *apperrors.Collector, field, raw string) (decimal.Decimal, bool) {
	if raw == "" {
		errs.Add(field, "is required")
		return decimal.Zero, false
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		errs.Add(field, "must be a decimal number")
		return decimal.Zero, false
	}
	if price.IsNegative() {
		errs.Add(field, "must be non-negative")
		return decimal.Zero, false
	}
	if price.Exponent() < -maxPriceExponent {
		errs.Addf(field, "must have at most %d fractional digits", maxPriceExponent)
		return decimal.Zero, false
	}
	return price, true
}
