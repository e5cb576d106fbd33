// FILE: internal/repository/contract/ai_model_repository.go
// Repository interface for the provider model catalog
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/repository/specification"

	"github.com/shopspring/decimal"
)

type AiModelRepository interface {
	Create(ctx context.Context, model *entity.AiModel) error
	Update(ctx context.Context, model *entity.AiModel) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiModel, error)
	FindByModelId(ctx context.Context, modelId string) (*entity.AiModel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiModel, error)
	// UpdatePricing writes both prices in a single UPDATE so the model
	// never momentarily carries mismatched pricing.
	UpdatePricing(ctx context.Context, modelId string, input, output decimal.Decimal) error
}
