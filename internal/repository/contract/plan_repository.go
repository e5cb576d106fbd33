// FILE: internal/repository/contract/plan_repository.go
// Read-only view over the billing subsystem's subscription plans.
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/repository/specification"
)

type PlanRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)
}
