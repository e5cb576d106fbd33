// FILE: pkg/admin/sync/state.go
package sync

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const lastRunKey = "catalog_sync_last_run"

// StateTracker records when the catalog was last synced so the service
// can skip redundant runs. The skip window is an explicit TTL value the
// console can query, not a hidden side effect.
type StateTracker struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStateTracker creates a tracker with the given skip window.
func NewStateTracker(ttl time.Duration) *StateTracker {
	return &StateTracker{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// MarkRan records a completed sync run at the current time.
func (t *StateTracker) MarkRan() {
	t.cache.Set(lastRunKey, time.Now().UTC(), t.ttl)
}

// LastRun returns the time of the last run inside the TTL window, or
// nil when none is recorded.
func (t *StateTracker) LastRun() *time.Time {
	v, ok := t.cache.Get(lastRunKey)
	if !ok {
		return nil
	}
	ts := v.(time.Time)
	return &ts
}

// RecentlySynced reports whether a run happened inside the TTL window.
func (t *StateTracker) RecentlySynced() bool {
	_, ok := t.cache.Get(lastRunKey)
	return ok
}

// Ttl returns the configured skip window.
func (t *StateTracker) Ttl() time.Duration {
	return t.ttl
}
