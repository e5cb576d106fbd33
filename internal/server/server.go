// FILE: internal/server/server.go
package server

import (
	"log"

	"ai-character-admin-be/internal/bootstrap"
	"ai-character-admin-be/internal/config"
	"ai-character-admin-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")
	admin := api.Group("/admin")

	// Login and the websocket endpoint handle their own auth.
	c.AuthController.RegisterRoutes(admin)
	c.NotificationController.RegisterRoutes(admin)

	protected := admin.Group("", serverutils.JwtMiddleware)

	c.CatalogController.RegisterRoutes(protected)
	c.AssignmentController.RegisterRoutes(protected)
	c.PricingController.RegisterRoutes(protected)
	c.SyncController.RegisterRoutes(protected)
	c.LogController.RegisterRoutes(protected)
}
