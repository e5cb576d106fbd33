// FILE: internal/controller/catalog_controller.go
// Controller for the feature catalog endpoints
package controller

import (
	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/pkg/serverutils"
	"ai-character-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogController interface {
	RegisterRoutes(admin fiber.Router)
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) CatalogController {
	return &catalogController{catalogService: catalogService}
}

func (c *catalogController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/categories", c.GetCategories)
	admin.Post("/categories", c.CreateCategory)
	admin.Put("/categories/:id", c.UpdateCategory)
	admin.Delete("/categories/:id", c.DeleteCategory)
	admin.Put("/categories/:id/reorder", c.ReorderCategory)

	admin.Get("/features/display", c.GetDisplayFeatures)
	admin.Post("/features/display", c.CreateDisplayFeature)
	admin.Put("/features/display/:id", c.UpdateDisplayFeature)
	admin.Delete("/features/display/:id", c.DeleteDisplayFeature)

	admin.Get("/features/system", c.GetSystemFeatures)
	admin.Post("/features/system", c.CreateSystemFeature)
	admin.Put("/features/system/:id", c.UpdateSystemFeature)
	admin.Delete("/features/system/:id", c.DeleteSystemFeature)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

// --- Categories ---

func (c *catalogController) GetCategories(ctx *fiber.Ctx) error {
	categories, err := c.catalogService.GetCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved", categories))
}

func (c *catalogController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	created, err := c.catalogService.CreateCategory(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", created))
}

func (c *catalogController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	updated, err := c.catalogService.UpdateCategory(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated", updated))
}

func (c *catalogController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.catalogService.DeleteCategory(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Category deleted", nil))
}

func (c *catalogController) ReorderCategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ReorderCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	resequenced, err := c.catalogService.ReorderCategory(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories reordered", resequenced))
}

// --- Display features ---

func (c *catalogController) GetDisplayFeatures(ctx *fiber.Ctx) error {
	var categoryId *uuid.UUID
	if raw := ctx.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid category_id"))
		}
		categoryId = &id
	}

	features, err := c.catalogService.GetDisplayFeatures(ctx.Context(), categoryId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Display features retrieved", features))
}

func (c *catalogController) CreateDisplayFeature(ctx *fiber.Ctx) error {
	var req dto.CreateDisplayFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	created, err := c.catalogService.CreateDisplayFeature(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Display feature created", created))
}

func (c *catalogController) UpdateDisplayFeature(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDisplayFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	updated, err := c.catalogService.UpdateDisplayFeature(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Display feature updated", updated))
}

func (c *catalogController) DeleteDisplayFeature(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.catalogService.DeleteDisplayFeature(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Display feature deleted", nil))
}

// --- System features ---

func (c *catalogController) GetSystemFeatures(ctx *fiber.Ctx) error {
	features, err := c.catalogService.GetSystemFeatures(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System features retrieved", features))
}

func (c *catalogController) CreateSystemFeature(ctx *fiber.Ctx) error {
	var req dto.CreateSystemFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	created, err := c.catalogService.CreateSystemFeature(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("System feature created", created))
}

func (c *catalogController) UpdateSystemFeature(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSystemFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	updated, err := c.catalogService.UpdateSystemFeature(ctx.Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System feature updated", updated))
}

func (c *catalogController) DeleteSystemFeature(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.catalogService.DeleteSystemFeature(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("System feature deleted", nil))
}
