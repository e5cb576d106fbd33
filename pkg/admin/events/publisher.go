package events

import (
	"context"
	"time"

	"ai-character-admin-be/internal/pkg/logger"
	pkgEvents "ai-character-admin-be/pkg/events"
	pktNats "ai-character-admin-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts entitlement event publishing for admin operations.
// Downstream enforcement services refresh their plan caches on these.
type Publisher interface {
	PublishPlanFeaturesAssigned(ctx context.Context, planId uuid.UUID, displayCount, systemCount, characterCount int)
	PublishPlanFeaturesCleared(ctx context.Context, planId uuid.UUID)
	PublishFeatureCreated(ctx context.Context, kind string, featureId uuid.UUID, name string)
	PublishFeatureDeleted(ctx context.Context, kind string, featureId uuid.UUID, name string)
	PublishModelPricingUpdated(ctx context.Context, modelId, pricingInput, pricingOutput string)
	PublishCatalogSynced(ctx context.Context, added, updated, deactivated, total int, durationMs int64)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, evt pkgEvents.BaseEvent) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishPlanFeaturesAssigned emits PLAN_FEATURES_ASSIGNED after a
// bundle replacement commits.
func (p *NatsPublisher) PublishPlanFeaturesAssigned(ctx context.Context, planId uuid.UUID, displayCount, systemCount, characterCount int) {
	now := time.Now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: pkgEvents.TypePlanFeaturesAssigned,
		Data: map[string]interface{}{
			"plan_id":          planId.String(),
			"display_features": displayCount,
			"system_features":  systemCount,
			"character_limits": characterCount,
			"entity_type":      "plan_assignment",
			"entity_id":        planId.String(),
			"occurred_at":      now,
		},
		OccurredAt: now,
	})
}

// PublishPlanFeaturesCleared emits PLAN_FEATURES_CLEARED
func (p *NatsPublisher) PublishPlanFeaturesCleared(ctx context.Context, planId uuid.UUID) {
	now := time.Now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: pkgEvents.TypePlanFeaturesCleared,
		Data: map[string]interface{}{
			"plan_id":     planId.String(),
			"entity_type": "plan_assignment",
			"entity_id":   planId.String(),
			"occurred_at": now,
		},
		OccurredAt: now,
	})
}

// PublishFeatureCreated emits FEATURE_CREATED. Kind is "display" or "system".
func (p *NatsPublisher) PublishFeatureCreated(ctx context.Context, kind string, featureId uuid.UUID, name string) {
	now := time.Now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: pkgEvents.TypeFeatureCreated,
		Data: map[string]interface{}{
			"feature_kind": kind,
			"feature_id":   featureId.String(),
			"name":         name,
			"entity_type":  "feature",
			"entity_id":    featureId.String(),
			"occurred_at":  now,
		},
		OccurredAt: now,
	})
}

// PublishFeatureDeleted emits FEATURE_DELETED
func (p *NatsPublisher) PublishFeatureDeleted(ctx context.Context, kind string, featureId uuid.UUID, name string) {
	now := time.Now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: pkgEvents.TypeFeatureDeleted,
		Data: map[string]interface{}{
			"feature_kind": kind,
			"feature_id":   featureId.String(),
			"name":         name,
			"entity_type":  "feature",
			"entity_id":    featureId.String(),
			"occurred_at":  now,
		},
		OccurredAt: now,
	})
}

// PublishModelPricingUpdated emits MODEL_PRICING_UPDATED. Prices travel
// as decimal strings, same as the API surface.
func (p *NatsPublisher) PublishModelPricingUpdated(ctx context.Context, modelId, pricingInput, pricingOutput string) {
	now := time.Now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: pkgEvents.TypeModelPricingUpdated,
		Data: map[string]interface{}{
			"model_id":       modelId,
			"pricing_input":  pricingInput,
			"pricing_output": pricingOutput,
			"entity_type":    "ai_model",
			"entity_id":      modelId,
			"occurred_at":    now,
		},
		OccurredAt: now,
	})
}

// PublishCatalogSynced emits CATALOG_SYNCED after a sync run.
func (p *NatsPublisher) PublishCatalogSynced(ctx context.Context, added, updated, deactivated, total int, durationMs int64) {
	now := time.Now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: pkgEvents.TypeCatalogSynced,
		Data: map[string]interface{}{
			"models_added":       added,
			"models_updated":     updated,
			"models_deactivated": deactivated,
			"models_total":       total,
			"duration_ms":        durationMs,
			"entity_type":        "model_catalog",
			"entity_id":          "catalog",
			"occurred_at":        now,
		},
		OccurredAt: now,
	})
}
