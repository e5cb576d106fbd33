// FILE: internal/repository/contract/assignment_repository.go
// Repository interface for plan feature assignments
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	// Replace upserts the bundle for its plan in one statement, replacing
	// any prior bundle wholesale.
	Replace(ctx context.Context, assignment *entity.PlanFeatureAssignment) error
	FindByPlan(ctx context.Context, planId uuid.UUID) (*entity.PlanFeatureAssignment, error)
	FindAll(ctx context.Context) ([]*entity.PlanFeatureAssignment, error)
	Delete(ctx context.Context, planId uuid.UUID) error
	// ReferencesDisplayFeature reports whether any stored bundle contains
	// the display feature. Used to block catalog deletes.
	ReferencesDisplayFeature(ctx context.Context, featureId uuid.UUID) (bool, error)
	// ReferencesSystemFeature reports whether any stored bundle carries a
	// value for the system feature.
	ReferencesSystemFeature(ctx context.Context, featureId uuid.UUID) (bool, error)
}
