// FILE: internal/model/display_feature_model.go
// GORM model for the display_features table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisplayFeature is a marketing-facing feature belonging to one category.
type DisplayFeature struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryId   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (DisplayFeature) TableName() string {
	return "display_features"
}

func (f *DisplayFeature) BeforeCreate(tx *gorm.DB) error {
	if f.Id == uuid.Nil {
		f.Id = uuid.New()
	}
	return nil
}
