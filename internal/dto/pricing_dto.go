// FILE: internal/dto/pricing_dto.go
// DTOs for model catalog pricing. Prices travel as decimal strings to
// preserve six fractional digits of precision.
package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateModelPricingRequest struct {
	PricingInput  string `json:"pricing_input" validate:"required"`
	PricingOutput string `json:"pricing_output" validate:"required"`
}

type AiModelResponse struct {
	Id            uuid.UUID  `json:"id"`
	ModelId       string     `json:"model_id"`
	Name          string     `json:"name"`
	PricingInput  string     `json:"pricing_input"`
	PricingOutput string     `json:"pricing_output"`
	IsActive      bool       `json:"is_active"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
}
