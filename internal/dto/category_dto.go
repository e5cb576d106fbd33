// FILE: internal/dto/category_dto.go
// DTOs for category CRUD and reordering
package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,gt=0"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

type ReorderCategoryRequest struct {
	DisplayOrder int `json:"display_order" validate:"required,gt=0"`
}

type CategoryResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
}
