// FILE: internal/mapper/category_mapper.go
// Mapper for Category entity <-> model conversion
package mapper

import (
	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(model *model.Category) *entity.Category {
	if model == nil {
		return nil
	}
	return &entity.Category{
		Id:           model.Id,
		Name:         model.Name,
		Description:  model.Description,
		DisplayOrder: model.DisplayOrder,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *CategoryMapper) ToModel(entity *entity.Category) *model.Category {
	if entity == nil {
		return nil
	}
	return &model.Category{
		Id:           entity.Id,
		Name:         entity.Name,
		Description:  entity.Description,
		DisplayOrder: entity.DisplayOrder,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *CategoryMapper) ToEntities(models []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
