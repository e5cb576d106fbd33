// FILE: internal/model/ai_model_model.go
// GORM model for the ai_models table (provider catalog + pricing)
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AiModel struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ModelId       string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name          string          `gorm:"type:varchar(255)"`
	PricingInput  decimal.Decimal `gorm:"type:numeric(12,6);not null"`
	PricingOutput decimal.Decimal `gorm:"type:numeric(12,6);not null"`
	IsActive      bool            `gorm:"default:true"`
	LastSyncedAt  *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (AiModel) TableName() string {
	return "ai_models"
}

func (m *AiModel) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return nil
}
