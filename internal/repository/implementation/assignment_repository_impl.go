// FILE: internal/repository/implementation/assignment_repository_impl.go
// Implementation of AssignmentRepository. Replace relies on a single-row
// upsert so concurrent saves for the same plan serialize at the row and a
// stored bundle never mixes fields from two submissions.
package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/mapper"
	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssignmentMapper
}

func NewAssignmentRepository(db *gorm.DB) contract.AssignmentRepository {
	return &AssignmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssignmentMapper(),
	}
}

func (r *AssignmentRepositoryImpl) Replace(ctx context.Context, assignment *entity.PlanFeatureAssignment) error {
	m, err := r.mapper.ToModel(assignment)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "plan_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_feature_ids",
				"system_feature_values",
				"character_limits",
				"updated_at",
			}),
		}).
		Create(m).Error
}

func (r *AssignmentRepositoryImpl) FindByPlan(ctx context.Context, planId uuid.UUID) (*entity.PlanFeatureAssignment, error) {
	var m model.PlanFeatureAssignment
	if err := r.db.WithContext(ctx).Where("plan_id = ?", planId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *AssignmentRepositoryImpl) FindAll(ctx context.Context) ([]*entity.PlanFeatureAssignment, error) {
	var models []*model.PlanFeatureAssignment
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	assignments := make([]*entity.PlanFeatureAssignment, 0, len(models))
	for _, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, e)
	}
	return assignments, nil
}

func (r *AssignmentRepositoryImpl) Delete(ctx context.Context, planId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("plan_id = ?", planId).Delete(&model.PlanFeatureAssignment{}).Error
}

// ReferencesDisplayFeature scans stored bundles in Go rather than with a
// JSON containment query: the assignment table holds one row per plan, so
// the scan stays small, and it keeps the check portable across dialects.
func (r *AssignmentRepositoryImpl) ReferencesDisplayFeature(ctx context.Context, featureId uuid.UUID) (bool, error) {
	var models []*model.PlanFeatureAssignment
	if err := r.db.WithContext(ctx).Select("plan_id", "display_feature_ids").Find(&models).Error; err != nil {
		return false, err
	}
	for _, m := range models {
		var ids []uuid.UUID
		if len(m.DisplayFeatureIds) == 0 {
			continue
		}
		if err := json.Unmarshal(m.DisplayFeatureIds, &ids); err != nil {
			return false, err
		}
		for _, id := range ids {
			if id == featureId {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *AssignmentRepositoryImpl) ReferencesSystemFeature(ctx context.Context, featureId uuid.UUID) (bool, error) {
	var models []*model.PlanFeatureAssignment
	if err := r.db.WithContext(ctx).Select("plan_id", "system_feature_values").Find(&models).Error; err != nil {
		return false, err
	}
	for _, m := range models {
		if len(m.SystemFeatureValues) == 0 {
			continue
		}
		var values map[uuid.UUID]interface{}
		if err := json.Unmarshal(m.SystemFeatureValues, &values); err != nil {
			return false, err
		}
		if _, ok := values[featureId]; ok {
			return true, nil
		}
	}
	return false, nil
}
