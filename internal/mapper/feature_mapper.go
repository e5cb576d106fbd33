// FILE: internal/mapper/feature_mapper.go
// Mappers for display and system feature entity <-> model conversion.
// System feature default/allowed values live in JSON columns, so these
// conversions can fail on corrupt rows and return errors.
package mapper

import (
	"encoding/json"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/model"
)

type DisplayFeatureMapper struct{}

func NewDisplayFeatureMapper() *DisplayFeatureMapper {
	return &DisplayFeatureMapper{}
}

func (m *DisplayFeatureMapper) ToEntity(model *model.DisplayFeature) *entity.DisplayFeature {
	if model == nil {
		return nil
	}
	return &entity.DisplayFeature{
		Id:           model.Id,
		CategoryId:   model.CategoryId,
		Name:         model.Name,
		Description:  model.Description,
		DisplayOrder: model.DisplayOrder,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *DisplayFeatureMapper) ToModel(entity *entity.DisplayFeature) *model.DisplayFeature {
	if entity == nil {
		return nil
	}
	return &model.DisplayFeature{
		Id:           entity.Id,
		CategoryId:   entity.CategoryId,
		Name:         entity.Name,
		Description:  entity.Description,
		DisplayOrder: entity.DisplayOrder,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *DisplayFeatureMapper) ToEntities(models []*model.DisplayFeature) []*entity.DisplayFeature {
	entities := make([]*entity.DisplayFeature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type SystemFeatureMapper struct{}

func NewSystemFeatureMapper() *SystemFeatureMapper {
	return &SystemFeatureMapper{}
}

func (m *SystemFeatureMapper) ToEntity(mdl *model.SystemFeature) (*entity.SystemFeature, error) {
	if mdl == nil {
		return nil, nil
	}
	e := &entity.SystemFeature{
		Id:        mdl.Id,
		Key:       mdl.Key,
		Name:      mdl.Name,
		Type:      entity.FeatureType(mdl.Type),
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
	if len(mdl.AllowedValues) > 0 {
		if err := json.Unmarshal(mdl.AllowedValues, &e.AllowedValues); err != nil {
			return nil, err
		}
	}
	if len(mdl.DefaultValue) > 0 {
		var raw interface{}
		if err := json.Unmarshal(mdl.DefaultValue, &raw); err != nil {
			return nil, err
		}
		// Decoded JSON carries float64/[]interface{}; callers expect the
		// canonical shapes (bool / LimitValue / []string).
		value, err := entity.NormalizeFeatureValue(e, raw)
		if err != nil {
			return nil, err
		}
		e.DefaultValue = value
	}
	return e, nil
}

func (m *SystemFeatureMapper) ToModel(e *entity.SystemFeature) (*model.SystemFeature, error) {
	if e == nil {
		return nil, nil
	}
	mdl := &model.SystemFeature{
		Id:        e.Id,
		Key:       e.Key,
		Name:      e.Name,
		Type:      string(e.Type),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.DefaultValue != nil {
		data, err := json.Marshal(e.DefaultValue)
		if err != nil {
			return nil, err
		}
		mdl.DefaultValue = data
	}
	if e.AllowedValues != nil {
		data, err := json.Marshal(e.AllowedValues)
		if err != nil {
			return nil, err
		}
		mdl.AllowedValues = data
	}
	return mdl, nil
}

func (m *SystemFeatureMapper) ToEntities(models []*model.SystemFeature) ([]*entity.SystemFeature, error) {
	entities := make([]*entity.SystemFeature, 0, len(models))
	for _, mdl := range models {
		e, err := m.ToEntity(mdl)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}
