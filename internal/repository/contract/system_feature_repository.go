// FILE: internal/repository/contract/system_feature_repository.go
// Repository interface for system features
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SystemFeatureRepository interface {
	Create(ctx context.Context, feature *entity.SystemFeature) error
	Update(ctx context.Context, feature *entity.SystemFeature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SystemFeature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemFeature, error)
	FindByKey(ctx context.Context, key string) (*entity.SystemFeature, error)
}
