// FILE: internal/entity/model_entity.go
// Domain entity for catalog models and their per-unit pricing
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AiModel is one entry of the provider model catalog. Pricing is per unit
// (input/output) with six fractional digits of precision; both prices are
// always written together so a model never carries mismatched pricing.
type AiModel struct {
	Id            uuid.UUID
	ModelId       string // Provider identifier, e.g. "gpt-4o-mini"
	Name          string
	PricingInput  decimal.Decimal
	PricingOutput decimal.Decimal
	IsActive      bool
	LastSyncedAt  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
