// FILE: internal/service/sync_service.go
// Service driving the external catalog sync collaborator. The core
// carries no provider logic; when no syncer is configured the endpoint
// reports unavailable.
package service

import (
	"context"

	"ai-character-admin-be/internal/dto"
	internalWS "ai-character-admin-be/internal/websocket"
	adminEvents "ai-character-admin-be/pkg/admin/events"
	adminSync "ai-character-admin-be/pkg/admin/sync"

	"github.com/gofiber/fiber/v2"
)

type ISyncService interface {
	RunSync(ctx context.Context, req dto.SyncCatalogRequest) (*dto.SyncCatalogResponse, error)
	GetState(ctx context.Context) (*dto.SyncStateResponse, error)
}

type syncService struct {
	syncer         adminSync.CatalogSyncer // nil when no provider is wired
	state          *adminSync.StateTracker
	eventPublisher adminEvents.Publisher
	notifier       INotifierService
}

func NewSyncService(
	syncer adminSync.CatalogSyncer,
	state *adminSync.StateTracker,
	eventPublisher adminEvents.Publisher,
	notifier INotifierService,
) ISyncService {
	return &syncService{
		syncer:         syncer,
		state:          state,
		eventPublisher: eventPublisher,
		notifier:       notifier,
	}
}

// RunSync invokes the collaborator. Non-forced runs inside the TTL
// window are skipped and reported as such rather than silently no-oping.
func (s *syncService) RunSync(ctx context.Context, req dto.SyncCatalogRequest) (*dto.SyncCatalogResponse, error) {
	if s.syncer == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "No catalog syncer configured")
	}

	if !req.Force && s.state.RecentlySynced() {
		return &dto.SyncCatalogResponse{Skipped: true}, nil
	}

	result, err := s.syncer.SyncCatalog(ctx, adminSync.Options{
		Force:             req.Force,
		UpdatePricing:     req.UpdatePricing,
		DeactivateMissing: req.DeactivateMissing,
	})
	if err != nil {
		return nil, err
	}

	s.state.MarkRan()

	durationMs := result.Duration.Milliseconds()
	s.eventPublisher.PublishCatalogSynced(ctx, result.ModelsAdded, result.ModelsUpdated,
		result.ModelsDeactivated, result.ModelsTotal, durationMs)

	if s.notifier != nil {
		s.notifier.Notify(internalWS.Notice{
			Type:    "catalog_sync_completed",
			Message: "Model catalog sync completed",
			Data: map[string]interface{}{
				"models_added":   result.ModelsAdded,
				"models_updated": result.ModelsUpdated,
				"models_total":   result.ModelsTotal,
			},
		})
	}

	return &dto.SyncCatalogResponse{
		ModelsAdded:       result.ModelsAdded,
		ModelsUpdated:     result.ModelsUpdated,
		ModelsDeactivated: result.ModelsDeactivated,
		ModelsTotal:       result.ModelsTotal,
		DurationMs:        durationMs,
		Errors:            result.Errors,
	}, nil
}

func (s *syncService) GetState(ctx context.Context) (*dto.SyncStateResponse, error) {
	return &dto.SyncStateResponse{
		LastRunAt:      s.state.LastRun(),
		TtlSeconds:     int(s.state.Ttl().Seconds()),
		RecentlySynced: s.state.RecentlySynced(),
	}, nil
}
