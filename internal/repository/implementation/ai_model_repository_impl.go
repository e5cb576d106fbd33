// FILE: internal/repository/implementation/ai_model_repository_impl.go
// Implementation of AiModelRepository
package implementation

import (
	"context"
	"errors"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/mapper"
	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/repository/contract"
	"ai-character-admin-be/internal/repository/specification"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AiModelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AiModelMapper
}

func NewAiModelRepository(db *gorm.DB) contract.AiModelRepository {
	return &AiModelRepositoryImpl{
		db:     db,
		mapper: mapper.NewAiModelMapper(),
	}
}

func (r *AiModelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AiModelRepositoryImpl) Create(ctx context.Context, m *entity.AiModel) error {
	mdl := r.mapper.ToModel(m)
	if err := r.db.WithContext(ctx).Create(mdl).Error; err != nil {
		return err
	}
	*m = *r.mapper.ToEntity(mdl)
	return nil
}

func (r *AiModelRepositoryImpl) Update(ctx context.Context, m *entity.AiModel) error {
	mdl := r.mapper.ToModel(m)
	if err := r.db.WithContext(ctx).Save(mdl).Error; err != nil {
		return err
	}
	*m = *r.mapper.ToEntity(mdl)
	return nil
}

func (r *AiModelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiModel, error) {
	var m model.AiModel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AiModelRepositoryImpl) FindByModelId(ctx context.Context, modelId string) (*entity.AiModel, error) {
	var m model.AiModel
	if err := r.db.WithContext(ctx).Where("model_id = ?", modelId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AiModelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiModel, error) {
	var models []*model.AiModel
	query := r.applySpecifications(r.db.WithContext(ctx).Order("model_id ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AiModelRepositoryImpl) UpdatePricing(ctx context.Context, modelId string, input, output decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&model.AiModel{}).
		Where("model_id = ?", modelId).
		Updates(map[string]interface{}{
			"pricing_input":  input,
			"pricing_output": output,
		}).Error
}
