// FILE: internal/model/category_model.go
// GORM model for the feature_categories table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups display features on the pricing page.
type Category struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description  string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "feature_categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}
