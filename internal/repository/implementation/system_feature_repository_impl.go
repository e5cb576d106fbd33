// FILE: internal/repository/implementation/system_feature_repository_impl.go
// Implementation of SystemFeatureRepository
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

type SystemFeatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SystemFeatureMapper
}

func NewSystemFeatureRepository(db *gorm.DB) contract.SystemFeatureRepository {
	return &SystemFeatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewSystemFeatureMapper(),
	}
}

func (r *SystemFeatureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SystemFeatureRepositoryImpl) Create(ctx context.Context, feature *entity.SystemFeature) error {
	m, err := r.mapper.ToModel(feature)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*feature = *e
	return nil
}

func (r *SystemFeatureRepositoryImpl) Update(ctx context.Context, feature *entity.SystemFeature) error {
	m, err := r.mapper.ToModel(feature)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*feature = *e
	return nil
}

func (r *SystemFeatureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SystemFeature{}, id).Error
}

func (r *SystemFeatureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SystemFeature, error) {
	var m model.SystemFeature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *SystemFeatureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemFeature, error) {
	var models []*model.SystemFeature
	query := r.applySpecifications(r.db.WithContext(ctx).Order("key ASC, id ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *SystemFeatureRepositoryImpl) FindByKey(ctx context.Context, key string) (*entity.SystemFeature, error) {
	var m model.SystemFeature
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
