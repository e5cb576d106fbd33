// FILE: internal/model/system_feature_model.go
// GORM model for the system_features table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SystemFeature is a typed capability. DefaultValue and AllowedValues are
// stored as JSON because their shape depends on Type.
type SystemFeature struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Key           string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Type          string         `gorm:"type:varchar(20);not null"` // boolean, limit, list
	DefaultValue  datatypes.JSON `gorm:"type:text"`
	AllowedValues datatypes.JSON `gorm:"type:text"` // Optional vocabulary for list features
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (SystemFeature) TableName() string {
	return "system_features"
}

func (f *SystemFeature) BeforeCreate(tx *gorm.DB) error {
	if f.Id == uuid.Nil {
		f.Id = uuid.New()
	}
	return nil
}
