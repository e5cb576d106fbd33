// FILE: pkg/admin/assignment/engine.go
package assignment

import (
	"context"

	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/pkg/apperrors"
	"ai-character-admin-be/internal/repository/specification"
	"ai-character-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Engine validates and persists plan feature bundles. Each call is
// stateless: it snapshots the catalog, validates the whole bundle and
// performs one atomic write. The stored bundle is replaced wholesale so
// old and new never coexist mid-operation.
type Engine struct{}

// NewEngine creates a new assignment engine
func NewEngine() *Engine {
	return &Engine{}
}

// AssignPlanFeatures replaces the plan's bundle with the submitted one.
// Validation runs over the full bundle before any write; all field
// problems are reported in a single ValidationError and nothing is
// persisted when even one part is invalid.
func (e *Engine) AssignPlanFeatures(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID, req dto.AssignPlanFeaturesRequest) (*entity.PlanFeatureAssignment, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, apperrors.WrapPersistence("plan lookup", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan", planId.String())
	}

	catalog, err := e.snapshotCatalog(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	bundle, err := builderFromRequest(req).Build(catalog)
	if err != nil {
		return nil, err
	}

	assignment := &entity.PlanFeatureAssignment{
		PlanId: planId,
		Bundle: bundle,
	}
	if err := uow.AssignmentRepository().Replace(ctx, assignment); err != nil {
		return nil, apperrors.WrapPersistence("assignment replace", err)
	}

	return assignment, nil
}

// GetAssignment returns the stored bundle for the plan. A plan without
// an assignment yet reads back as an empty bundle, not an error.
func (e *Engine) GetAssignment(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID) (*entity.PlanFeatureAssignment, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, apperrors.WrapPersistence("plan lookup", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan", planId.String())
	}

	assignment, err := uow.AssignmentRepository().FindByPlan(ctx, planId)
	if err != nil {
		return nil, apperrors.WrapPersistence("assignment lookup", err)
	}
	if assignment == nil {
		return &entity.PlanFeatureAssignment{
			PlanId: planId,
			Bundle: entity.FeatureBundle{
				DisplayFeatureIds:   []uuid.UUID{},
				SystemFeatureValues: map[uuid.UUID]interface{}{},
				CharacterLimits:     map[string]entity.CharacterLimit{},
			},
		}, nil
	}

	return assignment, nil
}

// ClearAssignment removes the plan's bundle entirely.
func (e *Engine) ClearAssignment(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID) error {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return apperrors.WrapPersistence("plan lookup", err)
	}
	if plan == nil {
		return apperrors.NewNotFoundError("plan", planId.String())
	}

	if err := uow.AssignmentRepository().Delete(ctx, planId); err != nil {
		return apperrors.WrapPersistence("assignment delete", err)
	}
	return nil
}

// PreviewRanking validates a submitted bundle without persisting it and
// returns its characters ordered by priority ascending, ties broken by
// character id ascending. Operators use this to inspect the effective
// serving order before saving.
func (e *Engine) PreviewRanking(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID, req dto.AssignPlanFeaturesRequest) ([]entity.CharacterRank, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, apperrors.WrapPersistence("plan lookup", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan", planId.String())
	}

	catalog, err := e.snapshotCatalog(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	bundle, err := builderFromRequest(req).Build(catalog)
	if err != nil {
		return nil, err
	}

	return bundle.RankCharacters(), nil
}

func builderFromRequest(req dto.AssignPlanFeaturesRequest) *BundleBuilder {
	builder := NewBundleBuilder().DisplayFeatures(req.DisplayFeatureIds...)
	for featureId, value := range req.SystemFeatureValues {
		builder.SystemValue(featureId, value)
	}
	for characterId, in := range req.CharacterLimits {
		builder.CharacterLimit(characterId, in.MessageLimit, in.TokenLimit, in.Priority)
	}
	return builder
}

// snapshotCatalog batch-loads every referenced display feature, system
// feature and character. One query per collection; the builder then
// resolves individual ids against the maps.
func (e *Engine) snapshotCatalog(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AssignPlanFeaturesRequest) (Catalog, error) {
	catalog := Catalog{
		DisplayFeatures: make(map[uuid.UUID]*entity.DisplayFeature),
		SystemFeatures:  make(map[uuid.UUID]*entity.SystemFeature),
		Characters:      make(map[string]*entity.Character),
	}

	if len(req.DisplayFeatureIds) > 0 {
		features, err := uow.DisplayFeatureRepository().FindAll(ctx, specification.ByIDs{IDs: req.DisplayFeatureIds})
		if err != nil {
			return Catalog{}, apperrors.WrapPersistence("display feature lookup", err)
		}
		for _, f := range features {
			catalog.DisplayFeatures[f.Id] = f
		}
	}

	if len(req.SystemFeatureValues) > 0 {
		ids := make([]uuid.UUID, 0, len(req.SystemFeatureValues))
		for id := range req.SystemFeatureValues {
			ids = append(ids, id)
		}
		features, err := uow.SystemFeatureRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
		if err != nil {
			return Catalog{}, apperrors.WrapPersistence("system feature lookup", err)
		}
		for _, f := range features {
			catalog.SystemFeatures[f.Id] = f
		}
	}

	if len(req.CharacterLimits) > 0 {
		ids := make([]string, 0, len(req.CharacterLimits))
		for id := range req.CharacterLimits {
			ids = append(ids, id)
		}
		characters, err := uow.CharacterRepository().FindByIds(ctx, ids)
		if err != nil {
			return Catalog{}, apperrors.WrapPersistence("character lookup", err)
		}
		for _, c := range characters {
			catalog.Characters[c.Id] = c
		}
	}

	return catalog, nil
}
