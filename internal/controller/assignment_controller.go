// FILE: internal/controller/assignment_controller.go
// Controller for plan feature assignment and the read-only registries
package controller

import (
	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/pkg/serverutils"
	"ai-character-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AssignmentController interface {
	RegisterRoutes(admin fiber.Router)
}

type assignmentController struct {
	assignmentService service.IAssignmentService
}

func NewAssignmentController(assignmentService service.IAssignmentService) AssignmentController {
	return &assignmentController{assignmentService: assignmentService}
}

func (c *assignmentController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/plans", c.GetPlans)
	admin.Get("/plans/:id/assignment", c.GetAssignment)
	admin.Put("/plans/:id/assignment", c.AssignPlanFeatures)
	admin.Delete("/plans/:id/assignment", c.ClearAssignment)
	admin.Post("/plans/:id/assignment/preview", c.PreviewRanking)
	admin.Get("/characters", c.GetCharacters)
}

func (c *assignmentController) GetPlans(ctx *fiber.Ctx) error {
	plans, err := c.assignmentService.GetPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", plans))
}

func (c *assignmentController) GetAssignment(ctx *fiber.Ctx) error {
	planId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan id"))
	}

	res, err := c.assignmentService.GetAssignment(ctx.Context(), planId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Assignment retrieved", res))
}

// AssignPlanFeatures replaces the plan's bundle wholesale. The whole
// submission is validated first; a 400 response carries every field
// error at once.
func (c *assignmentController) AssignPlanFeatures(ctx *fiber.Ctx) error {
	planId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan id"))
	}

	var req dto.AssignPlanFeaturesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.assignmentService.AssignPlanFeatures(ctx.Context(), planId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan features assigned", res))
}

func (c *assignmentController) ClearAssignment(ctx *fiber.Ctx) error {
	planId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan id"))
	}

	if err := c.assignmentService.ClearAssignment(ctx.Context(), planId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Assignment cleared", nil))
}

func (c *assignmentController) PreviewRanking(ctx *fiber.Ctx) error {
	planId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan id"))
	}

	var req dto.AssignPlanFeaturesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	ranks, err := c.assignmentService.PreviewRanking(ctx.Context(), planId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ranking preview", ranks))
}

func (c *assignmentController) GetCharacters(ctx *fiber.Ctx) error {
	characters, err := c.assignmentService.GetCharacters(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Characters retrieved", characters))
}
