// FILE: internal/controller/sync_controller.go
// Controller for the catalog sync boundary
package controller

import (
	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/pkg/serverutils"
	"ai-character-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SyncController interface {
	RegisterRoutes(admin fiber.Router)
}

type syncController struct {
	syncService service.ISyncService
}

func NewSyncController(syncService service.ISyncService) SyncController {
	return &syncController{syncService: syncService}
}

func (c *syncController) RegisterRoutes(admin fiber.Router) {
	admin.Post("/sync", c.RunSync)
	admin.Get("/sync/state", c.GetState)
}

func (c *syncController) RunSync(ctx *fiber.Ctx) error {
	var req dto.SyncCatalogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.syncService.RunSync(ctx.Context(), req)
	if err != nil {
		return err
	}

	message := "Catalog sync completed"
	if res.Skipped {
		message = "Catalog sync skipped (recently synced)"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *syncController) GetState(ctx *fiber.Ctx) error {
	state, err := c.syncService.GetState(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sync state", state))
}
