// FILE: internal/model/plan_feature_assignment_model.go
// GORM model for the plan_feature_assignments table. One row per plan;
// saves replace the row wholesale so old and new bundles never coexist.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PlanFeatureAssignment struct {
	PlanId              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DisplayFeatureIds   datatypes.JSON `gorm:"type:text"`
	SystemFeatureValues datatypes.JSON `gorm:"type:text"`
	CharacterLimits     datatypes.JSON `gorm:"type:text"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (PlanFeatureAssignment) TableName() string {
	return "plan_feature_assignments"
}
