// FILE: internal/service/catalog_service.go
// Service for the feature catalog: categories, display features and
// system features.
package service

import (
	"context"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/repository/unitofwork"
	adminEvents "ai-character-admin-be/pkg/admin/events"
	"ai-character-admin-be/pkg/admin/catalog"
	"ai-character-admin-be/pkg/admin/category"
	adminMapper "ai-character-admin-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type ICatalogService interface {
	// Categories
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	ReorderCategory(ctx context.Context, id uuid.UUID, req dto.ReorderCategoryRequest) ([]*dto.CategoryResponse, error)

	// Display features
	CreateDisplayFeature(ctx context.Context, req dto.CreateDisplayFeatureRequest) (*dto.DisplayFeatureResponse, error)
	UpdateDisplayFeature(ctx context.Context, id uuid.UUID, req dto.UpdateDisplayFeatureRequest) (*dto.DisplayFeatureResponse, error)
	DeleteDisplayFeature(ctx context.Context, id uuid.UUID) error
	GetDisplayFeatures(ctx context.Context, categoryId *uuid.UUID) ([]*dto.DisplayFeatureResponse, error)

	// System features
	CreateSystemFeature(ctx context.Context, req dto.CreateSystemFeatureRequest) (*dto.SystemFeatureResponse, error)
	UpdateSystemFeature(ctx context.Context, id uuid.UUID, req dto.UpdateSystemFeatureRequest) (*dto.SystemFeatureResponse, error)
	DeleteSystemFeature(ctx context.Context, id uuid.UUID) error
	GetSystemFeatures(ctx context.Context) ([]*dto.SystemFeatureResponse, error)
}

type catalogService struct {
	uowFactory     unitofwork.RepositoryFactory
	catalogManager *catalog.Manager
	registry       *category.Registry
	eventPublisher adminEvents.Publisher
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	catalogManager *catalog.Manager,
	registry *category.Registry,
	eventPublisher adminEvents.Publisher,
) ICatalogService {
	return &catalogService{
		uowFactory:     uowFactory,
		catalogManager: catalogManager,
		registry:       registry,
		eventPublisher: eventPublisher,
	}
}

// --- Categories ---

func (s *catalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.catalogManager.CreateCategory(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return adminMapper.CategoryToResponse(created), nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.catalogManager.UpdateCategory(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return adminMapper.CategoryToResponse(updated), nil
}

// DeleteCategory removes a category and repacks the remaining display
// orders into a contiguous 1..N sequence.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.catalogManager.DeleteCategory(ctx, uow, id); err != nil {
		return err
	}
	if _, err := s.registry.Normalize(ctx, uow); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *catalogService) GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := s.catalogManager.ListCategories(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.CategoriesToResponse(categories), nil
}

// ReorderCategory moves one category and returns the full resequenced
// list so the console can refresh in place.
func (s *catalogService) ReorderCategory(ctx context.Context, id uuid.UUID, req dto.ReorderCategoryRequest) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	resequenced, err := s.registry.Reorder(ctx, uow, id, req.DisplayOrder)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return adminMapper.CategoriesToResponse(resequenced), nil
}

// --- Display features ---

func (s *catalogService) CreateDisplayFeature(ctx context.Context, req dto.CreateDisplayFeatureRequest) (*dto.DisplayFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.catalogManager.CreateDisplayFeature(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.eventPublisher.PublishFeatureCreated(ctx, "display", created.Id, created.Name)
	return adminMapper.DisplayFeatureToResponse(created), nil
}

func (s *catalogService) UpdateDisplayFeature(ctx context.Context, id uuid.UUID, req dto.UpdateDisplayFeatureRequest) (*dto.DisplayFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.catalogManager.UpdateDisplayFeature(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return adminMapper.DisplayFeatureToResponse(updated), nil
}

func (s *catalogService) DeleteDisplayFeature(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.catalogManager.DeleteDisplayFeature(ctx, uow, id); err != nil {
		return err
	}
	s.eventPublisher.PublishFeatureDeleted(ctx, "display", id, "")
	return nil
}

func (s *catalogService) GetDisplayFeatures(ctx context.Context, categoryId *uuid.UUID) ([]*dto.DisplayFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := s.catalogManager.ListDisplayFeatures(ctx, uow, categoryId)
	if err != nil {
		return nil, err
	}
	return adminMapper.DisplayFeaturesToResponse(features), nil
}

// --- System features ---

func (s *catalogService) CreateSystemFeature(ctx context.Context, req dto.CreateSystemFeatureRequest) (*dto.SystemFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.catalogManager.CreateSystemFeature(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.eventPublisher.PublishFeatureCreated(ctx, "system", created.Id, created.Key)
	return adminMapper.SystemFeatureToResponse(created), nil
}

func (s *catalogService) UpdateSystemFeature(ctx context.Context, id uuid.UUID, req dto.UpdateSystemFeatureRequest) (*dto.SystemFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.catalogManager.UpdateSystemFeature(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return adminMapper.SystemFeatureToResponse(updated), nil
}

func (s *catalogService) DeleteSystemFeature(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.catalogManager.DeleteSystemFeature(ctx, uow, id); err != nil {
		return err
	}
	s.eventPublisher.PublishFeatureDeleted(ctx, "system", id, "")
	return nil
}

func (s *catalogService) GetSystemFeatures(ctx context.Context) ([]*dto.SystemFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := s.catalogManager.ListSystemFeatures(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.SystemFeaturesToResponse(features), nil
}
