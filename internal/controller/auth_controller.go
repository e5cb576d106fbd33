// FILE: internal/controller/auth_controller.go
// Controller for the admin login endpoint
package controller

import (
	"ai-character-admin-be/internal/dto"
	"ai-character-admin-be/internal/pkg/serverutils"
	"ai-character-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthController interface {
	RegisterRoutes(admin fiber.Router)
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) AuthController {
	return &authController{authService: authService}
}

func (c *authController) RegisterRoutes(admin fiber.Router) {
	admin.Post("/login", c.Login)
}

// Login authenticates an operator and issues a JWT with the admin role.
func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}
