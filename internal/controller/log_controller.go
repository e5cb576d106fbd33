// FILE: internal/controller/log_controller.go
// Controller for the admin log viewer
package controller

import (
	"ai-character-admin-be/internal/pkg/serverutils"
	"ai-character-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LogController interface {
	RegisterRoutes(admin fiber.Router)
}

type logController struct {
	logService service.ILogService
}

func NewLogController(logService service.ILogService) LogController {
	return &logController{logService: logService}
}

func (c *logController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/logs", c.GetLogs)
	admin.Get("/logs/:id", c.GetLogById)
}

func (c *logController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	level := ctx.Query("level")

	logs, err := c.logService.GetLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", logs))
}

func (c *logController) GetLogById(ctx *fiber.Ctx) error {
	entry, err := c.logService.GetLogById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Log entry not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Log entry", entry))
}
