package mapper

import (
	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/entity"
)

// CategoryToResponse converts entity to response DTO
func CategoryToResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		Id:           c.Id,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
	}
}

// CategoriesToResponse converts multiple entities to response DTOs
func CategoriesToResponse(categories []*entity.Category) []*dto.CategoryResponse {
	res := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, CategoryToResponse(c))
	}
	return res
}

// DisplayFeatureToResponse converts entity to response DTO
func DisplayFeatureToResponse(f *entity.DisplayFeature) *dto.DisplayFeatureResponse {
	if f == nil {
		return nil
	}
	return &dto.DisplayFeatureResponse{
		Id:           f.Id,
		CategoryId:   f.CategoryId,
		Name:         f.Name,
		Description:  f.Description,
		DisplayOrder: f.DisplayOrder,
	}
}

// DisplayFeaturesToResponse converts multiple entities to response DTOs
func DisplayFeaturesToResponse(features []*entity.DisplayFeature) []*dto.DisplayFeatureResponse {
	res := make([]*dto.DisplayFeatureResponse, 0, len(features))
	for _, f := range features {
		res = append(res, DisplayFeatureToResponse(f))
	}
	return res
}

// SystemFeatureToResponse converts entity to response DTO
func SystemFeatureToResponse(f *entity.SystemFeature) *dto.SystemFeatureResponse {
	if f == nil {
		return nil
	}
	return &dto.SystemFeatureResponse{
		Id:            f.Id,
		Key:           f.Key,
		Name:          f.Name,
		Type:          string(f.Type),
		DefaultValue:  f.DefaultValue,
		AllowedValues: f.AllowedValues,
	}
}

// SystemFeaturesToResponse converts multiple entities to response DTOs
func SystemFeaturesToResponse(features []*entity.SystemFeature) []*dto.SystemFeatureResponse {
	res := make([]*dto.SystemFeatureResponse, 0, len(features))
	for _, f := range features {
		res = append(res, SystemFeatureToResponse(f))
	}
	return res
}

// AssignmentToResponse converts the stored bundle to its wire shape.
// LimitValues marshal themselves (number or the unlimited sentinel).
func AssignmentToResponse(a *entity.PlanFeatureAssignment) *dto.PlanAssignmentResponse {
	if a == nil {
		return nil
	}
	limits := make(map[string]dto.CharacterLimitResponse, len(a.Bundle.CharacterLimits))
	for characterId, lim := range a.Bundle.CharacterLimits {
		limits[characterId] = dto.CharacterLimitResponse{
			MessageLimit: lim.MessageLimit,
			TokenLimit:   lim.TokenLimit,
			Priority:     lim.Priority,
		}
	}
	return &dto.PlanAssignmentResponse{
		PlanId:              a.PlanId,
		DisplayFeatureIds:   a.Bundle.DisplayFeatureIds,
		SystemFeatureValues: a.Bundle.SystemFeatureValues,
		CharacterLimits:     limits,
	}
}

// RanksToResponse converts a ranked preview to response DTOs
func RanksToResponse(ranks []entity.CharacterRank) []*dto.CharacterRankResponse {
	res := make([]*dto.CharacterRankResponse, 0, len(ranks))
	for _, r := range ranks {
		res = append(res, &dto.CharacterRankResponse{
			CharacterId:  r.CharacterId,
			Priority:     r.Priority,
			MessageLimit: r.MessageLimit,
			TokenLimit:   r.TokenLimit,
		})
	}
	return res
}

// AiModelToResponse converts entity to response DTO. Prices serialize as
// strings to keep six fractional digits intact.
func AiModelToResponse(m *entity.AiModel) *dto.AiModelResponse {
	if m == nil {
		return nil
	}
	return &dto.AiModelResponse{
		Id:            m.Id,
		ModelId:       m.ModelId,
		Name:          m.Name,
		PricingInput:  m.PricingInput.String(),
		PricingOutput: m.PricingOutput.String(),
		IsActive:      m.IsActive,
		LastSyncedAt:  m.LastSyncedAt,
	}
}

// AiModelsToResponse converts multiple entities to response DTOs
func AiModelsToResponse(models []*entity.AiModel) []*dto.AiModelResponse {
	res := make([]*dto.AiModelResponse, 0, len(models))
	for _, m := range models {
		res = append(res, AiModelToResponse(m))
	}
	return res
}

// PlanToResponse converts entity to response DTO
func PlanToResponse(p *entity.SubscriptionPlan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		Id:       p.Id,
		Name:     p.Name,
		Slug:     p.Slug,
		IsActive: p.IsActive,
	}
}

// PlansToResponse converts multiple entities to response DTOs
func PlansToResponse(plans []*entity.SubscriptionPlan) []*dto.PlanResponse {
	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, PlanToResponse(p))
	}
	return res
}

// CharacterToResponse converts entity to response DTO
func CharacterToResponse(c *entity.Character) *dto.CharacterResponse {
	if c == nil {
		return nil
	}
	return &dto.CharacterResponse{
		Id:        c.Id,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

// CharactersToResponse converts multiple entities to response DTOs
func CharactersToResponse(characters []*entity.Character) []*dto.CharacterResponse {
	res := make([]*dto.CharacterResponse, 0, len(characters))
	for _, c := range characters {
		res = append(res, CharacterToResponse(c))
	}
	return res
}
