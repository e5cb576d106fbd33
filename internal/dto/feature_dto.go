// FILE: internal/dto/feature_dto.go
// DTOs for the feature catalog (display + system features)
package dto

import "github.com/google/uuid"

// --- Display Features ---

type CreateDisplayFeatureRequest struct {
	CategoryId   uuid.UUID `json:"category_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=255"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

type UpdateDisplayFeatureRequest struct {
	CategoryId   *uuid.UUID `json:"category_id,omitempty"`
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string    `json:"description,omitempty"`
	DisplayOrder *int       `json:"display_order,omitempty"`
}

type DisplayFeatureResponse struct {
	Id           uuid.UUID `json:"id"`
	CategoryId   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
}

// --- System Features ---

// CreateSystemFeatureRequest adds a typed feature to the catalog.
// DefaultValue must match the declared type: boolean -> true/false,
// limit -> non-negative integer or "unlimited", list -> array of strings.
type CreateSystemFeatureRequest struct {
	Key           string      `json:"key" validate:"required,max=100"`
	Name          string      `json:"name" validate:"required,max=255"`
	Type          string      `json:"type" validate:"required,oneof=boolean limit list"`
	DefaultValue  interface{} `json:"default_value"`
	AllowedValues []string    `json:"allowed_values,omitempty"`
}

// UpdateSystemFeatureRequest is a partial update. Type is deliberately
// absent: it is immutable once the feature exists.
type UpdateSystemFeatureRequest struct {
	Name          *string     `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	DefaultValue  interface{} `json:"default_value,omitempty"`
	AllowedValues *[]string   `json:"allowed_values,omitempty"`
}

type SystemFeatureResponse struct {
	Id            uuid.UUID   `json:"id"`
	Key           string      `json:"key"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	DefaultValue  interface{} `json:"default_value"`
	AllowedValues []string    `json:"allowed_values,omitempty"`
}
