// FILE: internal/dto/sync_dto.go
// DTOs for the catalog sync collaborator boundary
package dto

import "time"

type SyncCatalogRequest struct {
	Force             bool `json:"force"`
	UpdatePricing     bool `json:"update_pricing"`
	DeactivateMissing bool `json:"deactivate_missing"`
}

type SyncCatalogResponse struct {
	ModelsAdded       int      `json:"models_added"`
	ModelsUpdated     int      `json:"models_updated"`
	ModelsDeactivated int      `json:"models_deactivated"`
	ModelsTotal       int      `json:"models_total"`
	DurationMs        int64    `json:"duration_ms"`
	Errors            []string `json:"errors"`
	Skipped           bool     `json:"skipped"` // True when a recent sync made this one a no-op
}

type SyncStateResponse struct {
	LastRunAt      *time.Time `json:"last_run_at,omitempty"`
	TtlSeconds     int        `json:"ttl_seconds"`
	RecentlySynced bool       `json:"recently_synced"`
}
