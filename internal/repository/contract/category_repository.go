// FILE: internal/repository/contract/category_repository.go
// Repository interface for feature categories
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	UpdateAll(ctx context.Context, categories []*entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
}
