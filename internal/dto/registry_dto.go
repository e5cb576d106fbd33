// FILE: internal/dto/registry_dto.go
// Read-only views of the externally owned registries (plans, characters)
package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	IsActive bool      `json:"is_active"`
}

type CharacterResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
