// FILE: pkg/admin/category/registry.go
package category

import (
	"context"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/pkg/apperrors"
	"ai-character-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Registry keeps the category sequence contiguous. After any reorder
// the display orders form exactly 1..N with no gaps or duplicates.
type Registry struct{}

func NewRegistry() *Registry {
	return &Registry{}
}

// Reorder moves a category to the given position and repacks the rest,
// preserving their relative order. Positions are 1-based; a target
// outside 1..N is rejected rather than clamped.
func (r *Registry) Reorder(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, newOrder int) ([]*entity.Category, error) {
	categories, err := uow.CategoryRepository().FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapPersistence("category listing", err)
	}

	idx := -1
	for i, c := range categories {
		if c.Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NewNotFoundError("category", id.String())
	}

	if newOrder < 1 || newOrder > len(categories) {
		return nil, apperrors.NewValidationError("display_order", "must be between 1 and the number of categories")
	}

	moved := categories[idx]
	rest := make([]*entity.Category, 0, len(categories)-1)
	rest = append(rest, categories[:idx]...)
	rest = append(rest, categories[idx+1:]...)

	resequenced := make([]*entity.Category, 0, len(categories))
	resequenced = append(resequenced, rest[:newOrder-1]...)
	resequenced = append(resequenced, moved)
	resequenced = append(resequenced, rest[newOrder-1:]...)

	changed := make([]*entity.Category, 0, len(resequenced))
	for i, c := range resequenced {
		if c.DisplayOrder != i+1 {
			c.DisplayOrder = i + 1
			changed = append(changed, c)
		}
	}
	if len(changed) == 0 {
		return resequenced, nil
	}

	if err := uow.CategoryRepository().UpdateAll(ctx, changed); err != nil {
		return nil, apperrors.WrapPersistence("category reorder", err)
	}

	return resequenced, nil
}

// Normalize repacks existing orders into 1..N without changing relative
// order. Used after deletes leave a gap in the sequence.
func (r *Registry) Normalize(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Category, error) {
	categories, err := uow.CategoryRepository().FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapPersistence("category listing", err)
	}

	changed := make([]*entity.Category, 0, len(categories))
	for i, c := range categories {
		if c.DisplayOrder != i+1 {
			c.DisplayOrder = i + 1
			changed = append(changed, c)
		}
	}
	if len(changed) == 0 {
		return categories, nil
	}

	if err := uow.CategoryRepository().UpdateAll(ctx, changed); err != nil {
		return nil, apperrors.WrapPersistence("category renumbering", err)
	}

	return categories, nil
}
