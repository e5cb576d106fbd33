// FILE: pkg/admin/sync/syncer.go
// Boundary contract for catalog synchronization from the external model
// provider. The feature/plan core never calls this itself; the sync
// service drives it on operator request.
package sync

import (
	"context"
	"time"
)

// Options controls a single sync run.
type Options struct {
	// Force runs the sync even when a recent run is inside the TTL window.
	Force bool
	// UpdatePricing overwrites stored pricing with provider pricing.
	UpdatePricing bool
	// DeactivateMissing deactivates models the provider no longer lists.
	DeactivateMissing bool
}

// Result summarizes one sync run.
type Result struct {
	ModelsAdded       int
	ModelsUpdated     int
	ModelsDeactivated int
	ModelsTotal       int
	Duration          time.Duration
	Errors            []string
}

// CatalogSyncer pulls the provider's model catalog and reconciles it
// into local storage. Implementations live outside the core; the
// console only needs the contract.
type CatalogSyncer interface {
	SyncCatalog(ctx context.Context, opts Options) (Result, error)
}
