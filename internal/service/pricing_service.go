// FILE: internal/service/pricing_service.go
package service

import (
	"context"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/repository/unitofwork"
	adminEvents "ai-character-admin-be/pkg/admin/events"
	adminMapper "ai-character-admin-be/pkg/admin/mapper"
	"ai-character-admin-be/pkg/admin/pricing"
)

type IPricingService interface {
	UpdateModelPricing(ctx context.Context, modelId string, req dto.UpdateModelPricingRequest) (*dto.AiModelResponse, error)
	GetModels(ctx context.Context) ([]*dto.AiModelResponse, error)
}

type pricingService struct {
	uowFactory     unitofwork.RepositoryFactory
	pricingManager *pricing.Manager
	eventPublisher adminEvents.Publisher
}

func NewPricingService(
	uowFactory unitofwork.RepositoryFactory,
	pricingManager *pricing.Manager,
	eventPublisher adminEvents.Publisher,
) IPricingService {
	return &pricingService{
		uowFactory:     uowFactory,
		pricingManager: pricingManager,
		eventPublisher: eventPublisher,
	}
}

func (s *pricingService) UpdateModelPricing(ctx context.Context, modelId string, req dto.UpdateModelPricingRequest) (*dto.AiModelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.pricingManager.UpdateModelPricing(ctx, uow, modelId, req)
	if err != nil {
		return nil, err
	}

	s.eventPublisher.PublishModelPricingUpdated(ctx, modelId,
		updated.PricingInput.String(), updated.PricingOutput.String())

	return adminMapper.AiModelToResponse(updated), nil
}

func (s *pricingService) GetModels(ctx context.Context) ([]*dto.AiModelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	models, err := s.pricingManager.ListModels(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.AiModelsToResponse(models), nil
}
