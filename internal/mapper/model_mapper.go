// FILE: internal/mapper/model_mapper.go
// Mapper for AiModel entity <-> model conversion
package mapper

import (
	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/model"
)

type AiModelMapper struct{}

func NewAiModelMapper() *AiModelMapper {
	return &AiModelMapper{}
}

func (m *AiModelMapper) ToEntity(mdl *model.AiModel) *entity.AiModel {
	if mdl == nil {
		return nil
	}
	return &entity.AiModel{
		Id:            mdl.Id,
		ModelId:       mdl.ModelId,
		Name:          mdl.Name,
		PricingInput:  mdl.PricingInput,
		PricingOutput: mdl.PricingOutput,
		IsActive:      mdl.IsActive,
		LastSyncedAt:  mdl.LastSyncedAt,
		CreatedAt:     mdl.CreatedAt,
		UpdatedAt:     mdl.UpdatedAt,
	}
}

func (m *AiModelMapper) ToModel(e *entity.AiModel) *model.AiModel {
	if e == nil {
		return nil
	}
	return &model.AiModel{
		Id:            e.Id,
		ModelId:       e.ModelId,
		Name:          e.Name,
		PricingInput:  e.PricingInput,
		PricingOutput: e.PricingOutput,
		IsActive:      e.IsActive,
		LastSyncedAt:  e.LastSyncedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m *AiModelMapper) ToEntities(models []*model.AiModel) []*entity.AiModel {
	entities := make([]*entity.AiModel, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
