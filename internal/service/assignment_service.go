// FILE: internal/service/assignment_service.go
// Service for the plan assignment engine plus the read-only plan and
// character registries backing the console.
package service

import (
	"context"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/repository/unitofwork"
	internalWS "ai-character-admin-be/internal/websocket"
	"ai-character-admin-be/pkg/admin/assignment"
	adminEvents "ai-character-admin-be/pkg/admin/events"
	adminMapper "ai-character-admin-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IAssignmentService interface {
	AssignPlanFeatures(ctx context.Context, planId uuid.UUID, req dto.AssignPlanFeaturesRequest) (*dto.PlanAssignmentResponse, error)
	GetAssignment(ctx context.Context, planId uuid.UUID) (*dto.PlanAssignmentResponse, error)
	ClearAssignment(ctx context.Context, planId uuid.UUID) error
	PreviewRanking(ctx context.Context, planId uuid.UUID, req dto.AssignPlanFeaturesRequest) ([]*dto.CharacterRankResponse, error)
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	GetCharacters(ctx context.Context) ([]*dto.CharacterResponse, error)
}

type assignmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	engine         *assignment.Engine
	eventPublisher adminEvents.Publisher
	notifier       INotifierService
}

func NewAssignmentService(
	uowFactory unitofwork.RepositoryFactory,
	engine *assignment.Engine,
	eventPublisher adminEvents.Publisher,
	notifier INotifierService,
) IAssignmentService {
	return &assignmentService{
		uowFactory:     uowFactory,
		engine:         engine,
		eventPublisher: eventPublisher,
		notifier:       notifier,
	}
}

// AssignPlanFeatures runs the engine inside one transaction. The upsert
// is a single row write, so concurrent saves for the same plan
// serialize at the row and last write wins without field interleaving.
func (s *assignmentService) AssignPlanFeatures(ctx context.Context, planId uuid.UUID, req dto.AssignPlanFeaturesRequest) (*dto.PlanAssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	saved, err := s.engine.AssignPlanFeatures(ctx, uow, planId, req)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.eventPublisher.PublishPlanFeaturesAssigned(ctx, planId,
		len(saved.Bundle.DisplayFeatureIds),
		len(saved.Bundle.SystemFeatureValues),
		len(saved.Bundle.CharacterLimits))

	if s.notifier != nil {
		s.notifier.Notify(internalWS.Notice{
			Type:    "plan_assignment_saved",
			Message: "Plan feature assignment updated",
			Data:    map[string]interface{}{"plan_id": planId.String()},
		})
	}

	return adminMapper.AssignmentToResponse(saved), nil
}

func (s *assignmentService) GetAssignment(ctx context.Context, planId uuid.UUID) (*dto.PlanAssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	found, err := s.engine.GetAssignment(ctx, uow, planId)
	if err != nil {
		return nil, err
	}
	return adminMapper.AssignmentToResponse(found), nil
}

func (s *assignmentService) ClearAssignment(ctx context.Context, planId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.engine.ClearAssignment(ctx, uow, planId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.eventPublisher.PublishPlanFeaturesCleared(ctx, planId)
	return nil
}

func (s *assignmentService) PreviewRanking(ctx context.Context, planId uuid.UUID, req dto.AssignPlanFeaturesRequest) ([]*dto.CharacterRankResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ranks, err := s.engine.PreviewRanking(ctx, uow, planId, req)
	if err != nil {
		return nil, err
	}
	return adminMapper.RanksToResponse(ranks), nil
}

func (s *assignmentService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return adminMapper.PlansToResponse(plans), nil
}

func (s *assignmentService) GetCharacters(ctx context.Context) ([]*dto.CharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	characters, err := uow.CharacterRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return adminMapper.CharactersToResponse(characters), nil
}
