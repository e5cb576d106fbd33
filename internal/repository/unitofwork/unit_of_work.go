package unitofwork

import (
	"context"

	"ai-character-admin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CategoryRepository() contract.CategoryRepository
	DisplayFeatureRepository() contract.DisplayFeatureRepository
	SystemFeatureRepository() contract.SystemFeatureRepository
	AssignmentRepository() contract.AssignmentRepository
	CharacterRepository() contract.CharacterRepository
	PlanRepository() contract.PlanRepository
	AiModelRepository() contract.AiModelRepository
	AdminUserRepository() contract.AdminUserRepository
}
