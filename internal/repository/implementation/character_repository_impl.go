// FILE: internal/repository/implementation/character_repository_impl.go
// Read-only implementation of CharacterRepository
package implementation

import (
	"context"
	"errors"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CharacterRepositoryImpl struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) contract.CharacterRepository {
	return &CharacterRepositoryImpl{db: db}
}

func toCharacterEntity(m *model.Character) *entity.Character {
	return &entity.Character{
		Id:        m.Id,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func (r *CharacterRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Character, error) {
	var m model.Character
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toCharacterEntity(&m), nil
}

func (r *CharacterRepositoryImpl) FindByIds(ctx context.Context, ids []string) ([]*entity.Character, error) {
	var models []*model.Character
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	characters := make([]*entity.Character, 0, len(models))
	for _, m := range models {
		characters = append(characters, toCharacterEntity(m))
	}
	return characters, nil
}

func (r *CharacterRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Character, error) {
	var models []*model.Character
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	characters := make([]*entity.Character, 0, len(models))
	for _, m := range models {
		characters = append(characters, toCharacterEntity(m))
	}
	return characters, nil
}
