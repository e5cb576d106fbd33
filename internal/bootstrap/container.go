// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-character-admin-be/internal/config"
	"ai-character-admin-be/internal/controller"
	"ai-character-admin-be/internal/pkg/logger"
	"ai-character-admin-be/internal/repository/unitofwork"
	"ai-character-admin-be/internal/service"
	internalWS "ai-character-admin-be/internal/websocket"
	"ai-character-admin-be/pkg/admin/assignment"
	"ai-character-admin-be/pkg/admin/catalog"
	"ai-character-admin-be/pkg/admin/category"
	adminEvents "ai-character-admin-be/pkg/admin/events"
	"ai-character-admin-be/pkg/admin/pricing"
	adminSync "ai-character-admin-be/pkg/admin/sync"

	pkgEvents "ai-character-admin-be/pkg/events"
	pktNats "ai-character-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const noticeTopic = "admin_notices"

type Container struct {
	// Controllers
	AuthController         controller.AuthController
	CatalogController      controller.CatalogController
	AssignmentController   controller.AssignmentController
	PricingController      controller.PricingController
	SyncController         controller.SyncController
	LogController          controller.LogController
	NotificationController controller.NotificationController

	// WebSockets & Notification
	WebSocketHub *internalWS.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := internalWS.NewHub(rdb, wsLogger)
	go wsHub.Run()

	notifierService := service.NewNotifierService(pubSub, noticeTopic, wsHub, wsLogger)
	if err := notifierService.Start(context.Background()); err != nil {
		log.Printf("[WARN] Failed to start notifier consumer: %v", err)
	}

	// Mirror bus events into the console so operators see changes made
	// by other instances or sidecar processes.
	if natsSub != nil {
		err := natsSub.Subscribe("entitlements.>", "console-notices", func(ctx context.Context, evt pkgEvents.Event) error {
			notifierService.Notify(internalWS.Notice{
				Type:    "entitlement_event",
				Message: evt.EventType(),
				Data:    evt.Payload(),
			})
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to entitlement events: %v", err)
		}
	}

	// 3. Admin Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	catalogManager := catalog.NewManager()
	categoryRegistry := category.NewRegistry()
	assignmentEngine := assignment.NewEngine()
	pricingManager := pricing.NewManager()
	syncState := adminSync.NewStateTracker(time.Duration(cfg.Sync.TtlSeconds) * time.Second)

	// No catalog syncer ships with the console itself; a provider
	// integration registers one here when deployed alongside it.
	var catalogSyncer adminSync.CatalogSyncer

	// 4. Services
	authService := service.NewAuthService(uowFactory)
	catalogService := service.NewCatalogService(uowFactory, catalogManager, categoryRegistry, adminEventPublisher)
	assignmentService := service.NewAssignmentService(uowFactory, assignmentEngine, adminEventPublisher, notifierService)
	pricingService := service.NewPricingService(uowFactory, pricingManager, adminEventPublisher)
	syncService := service.NewSyncService(catalogSyncer, syncState, adminEventPublisher, notifierService)
	logService := service.NewLogService(sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		CatalogController:      controller.NewCatalogController(catalogService),
		AssignmentController:   controller.NewAssignmentController(assignmentService),
		PricingController:      controller.NewPricingController(pricingService),
		SyncController:         controller.NewSyncController(syncService),
		LogController:          controller.NewLogController(logService),
		NotificationController: controller.NewNotificationController(wsHub, wsLogger),

		WebSocketHub: wsHub,
	}
}
