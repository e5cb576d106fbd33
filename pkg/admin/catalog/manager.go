// FILE: pkg/admin/catalog/manager.go
package catalog

import (
	"context"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/pkg/apperrors"
	"ai-character-admin-be/internal/repository/specification"
	"ai-character-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager owns the feature catalog: categories, display features and
// system features. It is read by the assignment engine but never writes
// plan state itself.
type Manager struct{}

// NewManager creates a new catalog manager
func NewManager() *Manager {
	return &Manager{}
}

// --- Categories ---

// CreateCategory adds a category. Names are unique; a zero display order
// places the category at the end of the current sequence.
func (m *Manager) CreateCategory(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateCategoryRequest) (*entity.Category, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}

	existing, err := uow.CategoryRepository().FindByName(ctx, req.Name)
	if err != nil {
		return nil, apperrors.WrapPersistence("category lookup", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("name", "a category with this name already exists")
	}

	order := req.DisplayOrder
	if order <= 0 {
		all, err := uow.CategoryRepository().FindAll(ctx)
		if err != nil {
			return nil, apperrors.WrapPersistence("category listing", err)
		}
		order = len(all) + 1
	}

	category := &entity.Category{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: order,
	}

	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, apperrors.WrapPersistence("category create", err)
	}

	return category, nil
}

// UpdateCategory applies a partial update to name/description.
func (m *Manager) UpdateCategory(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateCategoryRequest) (*entity.Category, error) {
	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.WrapPersistence("category lookup", err)
	}
	if category == nil {
		return nil, apperrors.NewNotFoundError("category", id.String())
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		duplicate, err := uow.CategoryRepository().FindByName(ctx, *req.Name)
		if err != nil {
			return nil, apperrors.WrapPersistence("category lookup", err)
		}
		if duplicate != nil && duplicate.Id != id {
			return nil, apperrors.NewValidationError("name", "a category with this name already exists")
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, apperrors.WrapPersistence("category update", err)
	}

	return category, nil
}

// DeleteCategory removes a category. Policy: reject while display
// features are attached rather than cascade, so plan-facing state is
// never silently corrupted.
func (m *Manager) DeleteCategory(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperrors.WrapPersistence("category lookup", err)
	}
	if category == nil {
		return apperrors.NewNotFoundError("category", id.String())
	}

	count, err := uow.DisplayFeatureRepository().CountByCategory(ctx, id)
	if err != nil {
		return apperrors.WrapPersistence("category reference check", err)
	}
	if count > 0 {
		return apperrors.NewConflictError("category '%s' still has %d display feature(s) attached", category.Name, count)
	}

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return apperrors.WrapPersistence("category delete", err)
	}
	return nil
}

// ListCategories returns all categories sorted by display order then id.
func (m *Manager) ListCategories(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Category, error) {
	categories, err := uow.CategoryRepository().FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapPersistence("category listing", err)
	}
	return categories, nil
}

// --- Display Features ---

// CreateDisplayFeature adds a marketing feature under an existing category.
func (m *Manager) CreateDisplayFeature(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateDisplayFeatureRequest) (*entity.DisplayFeature, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.CategoryId})
	if err != nil {
		return nil, apperrors.WrapPersistence("category lookup", err)
	}
	if category == nil {
		return nil, apperrors.NewNotFoundError("category", req.CategoryId.String())
	}

	feature := &entity.DisplayFeature{
		CategoryId:   req.CategoryId,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}

	if err := uow.DisplayFeatureRepository().Create(ctx, feature); err != nil {
		return nil, apperrors.WrapPersistence("display feature create", err)
	}

	return feature, nil
}

// UpdateDisplayFeature applies a partial update.
func (m *Manager) UpdateDisplayFeature(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateDisplayFeatureRequest) (*entity.DisplayFeature, error) {
	feature, err := uow.DisplayFeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.WrapPersistence("display feature lookup", err)
	}
	if feature == nil {
		return nil, apperrors.NewNotFoundError("display feature", id.String())
	}

	if req.CategoryId != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.CategoryId})
		if err != nil {
			return nil, apperrors.WrapPersistence("category lookup", err)
		}
		if category == nil {
			return nil, apperrors.NewNotFoundError("category", req.CategoryId.String())
		}
		feature.CategoryId = *req.CategoryId
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		feature.Name = *req.Name
	}
	if req.Description != nil {
		feature.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		feature.DisplayOrder = *req.DisplayOrder
	}

	if err := uow.DisplayFeatureRepository().Update(ctx, feature); err != nil {
		return nil, apperrors.WrapPersistence("display feature update", err)
	}

	return feature, nil
}

// DeleteDisplayFeature removes a display feature unless a plan
// assignment still references it.
func (m *Manager) DeleteDisplayFeature(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	feature, err := uow.DisplayFeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperrors.WrapPersistence("display feature lookup", err)
	}
	if feature == nil {
		return apperrors.NewNotFoundError("display feature", id.String())
	}

	referenced, err := uow.AssignmentRepository().ReferencesDisplayFeature(ctx, id)
	if err != nil {
		return apperrors.WrapPersistence("assignment reference check", err)
	}
	if referenced {
		return apperrors.NewConflictError("display feature '%s' is referenced by at least one plan assignment", feature.Name)
	}

	if err := uow.DisplayFeatureRepository().Delete(ctx, id); err != nil {
		return apperrors.WrapPersistence("display feature delete", err)
	}
	return nil
}

// ListDisplayFeatures returns all display features sorted by display
// order then id, optionally filtered by category.
func (m *Manager) ListDisplayFeatures(ctx context.Context, uow unitofwork.UnitOfWork, categoryId *uuid.UUID) ([]*entity.DisplayFeature, error) {
	var specs []specification.Specification
	if categoryId != nil {
		specs = append(specs, specification.ByCategory{CategoryID: *categoryId})
	}
	features, err := uow.DisplayFeatureRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperrors.WrapPersistence("display feature listing", err)
	}
	return features, nil
}

// --- System Features ---

// CreateSystemFeature adds a typed feature. The default value must
// type-check against the declared type; list vocabularies are only
// accepted for list features.
func (m *Manager) CreateSystemFeature(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateSystemFeatureRequest) (*entity.SystemFeature, error) {
	featureType := entity.FeatureType(req.Type)
	if !featureType.Valid() {
		return nil, apperrors.NewValidationError("type", "must be one of boolean, limit, list")
	}
	if len(req.AllowedValues) > 0 && featureType != entity.FeatureTypeList {
		return nil, apperrors.NewValidationError("allowed_values", "only list features declare a vocabulary")
	}

	existing, err := uow.SystemFeatureRepository().FindByKey(ctx, req.Key)
	if err != nil {
		return nil, apperrors.WrapPersistence("system feature lookup", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("key", "a system feature with this key already exists")
	}

	feature := &entity.SystemFeature{
		Key:           req.Key,
		Name:          req.Name,
		Type:          featureType,
		AllowedValues: req.AllowedValues,
	}

	if req.DefaultValue == nil {
		return nil, apperrors.NewValidationError("default_value", "is required")
	}
	normalized, err := entity.NormalizeFeatureValue(feature, req.DefaultValue)
	if err != nil {
		return nil, apperrors.NewValidationError("default_value", err.Error())
	}
	feature.DefaultValue = normalized

	if err := uow.SystemFeatureRepository().Create(ctx, feature); err != nil {
		return nil, apperrors.WrapPersistence("system feature create", err)
	}

	return feature, nil
}

// UpdateSystemFeature applies a partial update. The feature type is
// immutable: the update DTO cannot carry one, and key changes are also
// rejected to keep downstream consumers stable.
func (m *Manager) UpdateSystemFeature(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateSystemFeatureRequest) (*entity.SystemFeature, error) {
	feature, err := uow.SystemFeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.WrapPersistence("system feature lookup", err)
	}
	if feature == nil {
		return nil, apperrors.NewNotFoundError("system feature", id.String())
	}

	if req.Name != nil {
		feature.Name = *req.Name
	}
	if req.AllowedValues != nil {
		if feature.Type != entity.FeatureTypeList {
			return nil, apperrors.NewValidationError("allowed_values", "only list features declare a vocabulary")
		}
		feature.AllowedValues = *req.AllowedValues
	}
	if req.DefaultValue != nil {
		normalized, err := entity.NormalizeFeatureValue(feature, req.DefaultValue)
		if err != nil {
			return nil, apperrors.NewValidationError("default_value", err.Error())
		}
		feature.DefaultValue = normalized
	} else if req.AllowedValues != nil {
		// A narrowed vocabulary must not orphan the stored default.
		if _, err := entity.NormalizeFeatureValue(feature, feature.DefaultValue); err != nil {
			return nil, apperrors.NewValidationError("allowed_values", "stored default value violates the new vocabulary")
		}
	}

	if err := uow.SystemFeatureRepository().Update(ctx, feature); err != nil {
		return nil, apperrors.WrapPersistence("system feature update", err)
	}

	return feature, nil
}

// DeleteSystemFeature removes a system feature unless a plan assignment
// still carries a value for it.
func (m *Manager) DeleteSystemFeature(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	feature, err := uow.SystemFeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperrors.WrapPersistence("system feature lookup", err)
	}
	if feature == nil {
		return apperrors.NewNotFoundError("system feature", id.String())
	}

	referenced, err := uow.AssignmentRepository().ReferencesSystemFeature(ctx, id)
	if err != nil {
		return apperrors.WrapPersistence("assignment reference check", err)
	}
	if referenced {
		return apperrors.NewConflictError("system feature '%s' is referenced by at least one plan assignment", feature.Key)
	}

	if err := uow.SystemFeatureRepository().Delete(ctx, id); err != nil {
		return apperrors.WrapPersistence("system feature delete", err)
	}
	return nil
}

// ListSystemFeatures returns all system features sorted by key.
func (m *Manager) ListSystemFeatures(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.SystemFeature, error) {
	features, err := uow.SystemFeatureRepository().FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapPersistence("system feature listing", err)
	}
	return features, nil
}
