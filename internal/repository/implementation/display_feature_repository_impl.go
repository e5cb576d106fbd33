// FILE: internal/repository/implementation/display_feature_repository_impl.go
// Implementation of DisplayFeatureRepository
package implementation

import (
	"context"
	"errors"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/mapper"
	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/repository/contract"
	"ai-character-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DisplayFeatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DisplayFeatureMapper
}

func NewDisplayFeatureRepository(db *gorm.DB) contract.DisplayFeatureRepository {
	return &DisplayFeatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewDisplayFeatureMapper(),
	}
}

func (r *DisplayFeatureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DisplayFeatureRepositoryImpl) Create(ctx context.Context, feature *entity.DisplayFeature) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *DisplayFeatureRepositoryImpl) Update(ctx context.Context, feature *entity.DisplayFeature) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *DisplayFeatureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DisplayFeature{}, id).Error
}

func (r *DisplayFeatureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DisplayFeature, error) {
	var m model.DisplayFeature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DisplayFeatureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DisplayFeature, error) {
	var models []*model.DisplayFeature
	query := r.applySpecifications(r.db.WithContext(ctx).Order("display_order ASC, id ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DisplayFeatureRepositoryImpl) CountByCategory(ctx context.Context, categoryId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.DisplayFeature{}).
		Where("category_id = ?", categoryId).
		Count(&count).Error
	return count, err
}
