// FILE: internal/entity/category_entity.go
// Domain entity for feature categories
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups display features for presentation on the pricing page.
// DisplayOrder is kept contiguous (1..N) by the category registry.
type Category struct {
	Id           uuid.UUID
	Name         string
	Description  string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
