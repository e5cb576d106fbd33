// FILE: internal/model/subscription_plan_model.go
// GORM model for the subscription_plans table. Owned by the billing
// subsystem; the entitlement core only resolves plan ids against it.
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
