// FILE: internal/repository/contract/character_repository.go
// Read-only view over the character registry. Character lifecycle is
// owned by the character platform.
package contract

import (
	"context"

	"ai-character-admin-be/internal/entity"
)

type CharacterRepository interface {
	FindById(ctx context.Context, id string) (*entity.Character, error)
	FindByIds(ctx context.Context, ids []string) ([]*entity.Character, error)
	FindAll(ctx context.Context) ([]*entity.Character, error)
}
