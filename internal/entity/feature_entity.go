// FILE: internal/entity/feature_entity.go
// Domain entities for the feature catalog
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeatureType classifies how a system feature value is interpreted.
type FeatureType string

const (
	FeatureTypeBoolean FeatureType = "boolean"
	FeatureTypeLimit   FeatureType = "limit"
	FeatureTypeList    FeatureType = "list"
)

// Valid reports whether t is one of the declared feature types.
func (t FeatureType) Valid() bool {
	switch t {
	case FeatureTypeBoolean, FeatureTypeLimit, FeatureTypeList:
		return true
	}
	return false
}

// DisplayFeature is a marketing-facing plan capability shown to end users.
// It carries no runtime semantics.
type DisplayFeature struct {
	Id           uuid.UUID
	CategoryId   uuid.UUID // Must reference an existing Category
	Name         string
	Description  string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SystemFeature is a technically enforced capability with a typed value.
// Type is immutable after creation: changing it would invalidate every
// stored plan value for the feature.
type SystemFeature struct {
	Id            uuid.UUID
	Key           string // Unique machine-readable key: max_messages_per_day, voice_calls, ...
	Name          string
	Type          FeatureType
	DefaultValue  interface{} // Shape depends on Type (bool / LimitValue / []string)
	AllowedValues []string    // Optional vocabulary for list features
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
