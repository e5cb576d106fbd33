// FILE: internal/entity/plan_entity.go
// Subscription plans are owned by the billing subsystem. The core only
// references plan ids; plans are read to resolve assignments, never
// created or mutated here.
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	IsActive  bool
	CreatedAt time.Time
}
