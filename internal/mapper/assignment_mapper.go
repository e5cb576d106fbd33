// FILE: internal/mapper/assignment_mapper.go
// Mapper for PlanFeatureAssignment entity <-> model conversion. The
// bundle's three parts are serialized into separate JSON columns.
package mapper

import (
	"encoding/json"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/model"

	"github.com/google/uuid"
)

type AssignmentMapper struct{}

func NewAssignmentMapper() *AssignmentMapper {
	return &AssignmentMapper{}
}

func (m *AssignmentMapper) ToModel(e *entity.PlanFeatureAssignment) (*model.PlanFeatureAssignment, error) {
	if e == nil {
		return nil, nil
	}
	displayIds, err := json.Marshal(e.Bundle.DisplayFeatureIds)
	if err != nil {
		return nil, err
	}
	systemValues, err := json.Marshal(e.Bundle.SystemFeatureValues)
	if err != nil {
		return nil, err
	}
	characterLimits, err := json.Marshal(e.Bundle.CharacterLimits)
	if err != nil {
		return nil, err
	}
	return &model.PlanFeatureAssignment{
		PlanId:              e.PlanId,
		DisplayFeatureIds:   displayIds,
		SystemFeatureValues: systemValues,
		CharacterLimits:     characterLimits,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}, nil
}

func (m *AssignmentMapper) ToEntity(mdl *model.PlanFeatureAssignment) (*entity.PlanFeatureAssignment, error) {
	if mdl == nil {
		return nil, nil
	}
	e := &entity.PlanFeatureAssignment{
		PlanId: mdl.PlanId,
		Bundle: entity.FeatureBundle{
			DisplayFeatureIds:   []uuid.UUID{},
			SystemFeatureValues: map[uuid.UUID]interface{}{},
			CharacterLimits:     map[string]entity.CharacterLimit{},
		},
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
	if len(mdl.DisplayFeatureIds) > 0 {
		if err := json.Unmarshal(mdl.DisplayFeatureIds, &e.Bundle.DisplayFeatureIds); err != nil {
			return nil, err
		}
	}
	if len(mdl.SystemFeatureValues) > 0 {
		if err := json.Unmarshal(mdl.SystemFeatureValues, &e.Bundle.SystemFeatureValues); err != nil {
			return nil, err
		}
	}
	if len(mdl.CharacterLimits) > 0 {
		if err := json.Unmarshal(mdl.CharacterLimits, &e.Bundle.CharacterLimits); err != nil {
			return nil, err
		}
	}
	return e, nil
}
