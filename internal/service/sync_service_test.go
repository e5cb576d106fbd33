// FILE: internal/service/sync_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-character-admin-be/internal/dto"
	adminSync "ai-character-admin-be/pkg/admin/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSyncer struct {
	calls   int
	lastOpt adminSync.Options
	result  adminSync.Result
	err     error
}

func (f *fakeSyncer) SyncCatalog(ctx context.Context, opt adminSync.Options) (adminSync.Result, error) {
	f.calls++
	f.lastOpt = opt
	return f.result, f.err
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishPlanFeaturesAssigned(context.Context, uuid.UUID, int, int, int) {}
func (noopEventPublisher) PublishPlanFeaturesCleared(context.Context, uuid.UUID)                {}
func (noopEventPublisher) PublishFeatureCreated(context.Context, string, uuid.UUID, string)     {}
func (noopEventPublisher) PublishFeatureDeleted(context.Context, string, uuid.UUID, string)     {}
func (noopEventPublisher) PublishModelPricingUpdated(context.Context, string, string, string)   {}
func (noopEventPublisher) PublishCatalogSynced(context.Context, int, int, int, int, int64)      {}

func TestRunSync_NoSyncerConfigured(t *testing.T) {
	svc := NewSyncService(nil, adminSync.NewStateTracker(time.Minute), noopEventPublisher{}, nil)

	_, err := svc.RunSync(context.Background(), dto.SyncCatalogRequest{})
	var fe *fiber.Error
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusServiceUnavailable, fe.Code)
}

func TestRunSync_RunsAndReports(t *testing.T) {
	syncer := &fakeSyncer{result: adminSync.Result{
		ModelsAdded:   3,
		ModelsUpdated: 2,
		ModelsTotal:   10,
		Duration:      1500 * time.Millisecond,
	}}
	state := adminSync.NewStateTracker(time.Minute)
	svc := NewSyncService(syncer, state, noopEventPublisher{}, nil)

	res, err := svc.RunSync(context.Background(), dto.SyncCatalogRequest{UpdatePricing: true})
	assert.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 3, res.ModelsAdded)
	assert.Equal(t, int64(1500), res.DurationMs)
	assert.True(t, syncer.lastOpt.UpdatePricing)
	assert.True(t, state.RecentlySynced())
}

func TestRunSync_SkipsInsideWindowUnlessForced(t *testing.T) {
	syncer := &fakeSyncer{}
	state := adminSync.NewStateTracker(time.Minute)
	svc := NewSyncService(syncer, state, noopEventPublisher{}, nil)

	_, err := svc.RunSync(context.Background(), dto.SyncCatalogRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 1, syncer.calls)

	// Second run inside the window is skipped without touching the syncer.
	res, err := svc.RunSync(context.Background(), dto.SyncCatalogRequest{})
	assert.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, 1, syncer.calls)

	// Force pushes through.
	res, err = svc.RunSync(context.Background(), dto.SyncCatalogRequest{Force: true})
	assert.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 2, syncer.calls)
	assert.True(t, syncer.lastOpt.Force)
}

func TestRunSync_FailedRunDoesNotMarkState(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("provider unreachable")}
	state := adminSync.NewStateTracker(time.Minute)
	svc := NewSyncService(syncer, state, noopEventPublisher{}, nil)

	_, err := svc.RunSync(context.Background(), dto.SyncCatalogRequest{})
	assert.Error(t, err)
	assert.False(t, state.RecentlySynced())
}

func TestGetState(t *testing.T) {
	state := adminSync.NewStateTracker(90 * time.Second)
	svc := NewSyncService(&fakeSyncer{}, state, noopEventPublisher{}, nil)

	res, err := svc.GetState(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, res.LastRunAt)
	assert.Equal(t, 90, res.TtlSeconds)
	assert.False(t, res.RecentlySynced)

	state.MarkRan()
	res, err = svc.GetState(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, res.LastRunAt)
	assert.True(t, res.RecentlySynced)
}
