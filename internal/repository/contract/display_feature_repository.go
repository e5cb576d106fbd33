// FILE: internal/repository/contract/display_feature_repository.go
// Repository interface for display features
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DisplayFeatureRepository interface {
	Create(ctx context.Context, feature *entity.DisplayFeature) error
	Update(ctx context.Context, feature *entity.DisplayFeature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DisplayFeature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DisplayFeature, error)
	CountByCategory(ctx context.Context, categoryId uuid.UUID) (int64, error)
}
