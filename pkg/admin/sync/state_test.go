// FILE: pkg/admin/sync/state_test.go
package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateTracker_FreshTrackerHasNoRun(t *testing.T) {
	tracker := NewStateTracker(time.Minute)

	assert.Nil(t, tracker.LastRun())
	assert.False(t, tracker.RecentlySynced())
	assert.Equal(t, time.Minute, tracker.Ttl())
}

func TestStateTracker_MarkRanOpensSkipWindow(t *testing.T) {
	tracker := NewStateTracker(time.Minute)
	tracker.MarkRan()

	assert.True(t, tracker.RecentlySynced())
	last := tracker.LastRun()
	if assert.NotNil(t, last) {
		assert.WithinDuration(t, time.Now().UTC(), *last, time.Second)
	}
}

func TestStateTracker_WindowExpires(t *testing.T) {
	tracker := NewStateTracker(50 * time.Millisecond)
	tracker.MarkRan()
	assert.True(t, tracker.RecentlySynced())

	time.Sleep(80 * time.Millisecond)
	assert.False(t, tracker.RecentlySynced())
	assert.Nil(t, tracker.LastRun())
}
