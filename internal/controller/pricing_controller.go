// FILE: internal/controller/pricing_controller.go
// Controller for the model catalog pricing endpoints
package controller

import (
	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/pkg/serverutils"
	"ai-character-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PricingController interface {
	RegisterRoutes(admin fiber.Router)
}

type pricingController struct {
	pricingService service.IPricingService
}

func NewPricingController(pricingService service.IPricingService) PricingController {
	return &pricingController{pricingService: pricingService}
}

func (c *pricingController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/models", c.GetModels)
	admin.Put("/models/:id/pricing", c.UpdateModelPricing)
}

func (c *pricingController) GetModels(ctx *fiber.Ctx) error {
	models, err := c.pricingService.GetModels(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Models retrieved", models))
}

// UpdateModelPricing writes both prices together. The path id is the
// provider model id ("gpt-4o-mini"), not the row uuid.
func (c *pricingController) UpdateModelPricing(ctx *fiber.Ctx) error {
	modelId := ctx.Params("id")
	if modelId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing model id"))
	}

	var req dto.UpdateModelPricingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	updated, err := c.pricingService.UpdateModelPricing(ctx.Context(), modelId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Model pricing updated", updated))
}
