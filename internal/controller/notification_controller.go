// FILE: internal/controller/notification_controller.go
// Controller for the admin notification websocket
package controller

import (
	"os"

	"ai-character-admin-be/internal/pkg/logger"
	"ai-character-admin-be/internal/pkg/serverutils"
	internalWS "ai-character-admin-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type NotificationController interface {
	RegisterRoutes(admin fiber.Router)
}

type notificationController struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewNotificationController(hub *internalWS.Hub, log logger.ILogger) NotificationController {
	return &notificationController{hub: hub, logger: log}
}

func (c *notificationController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/ws", c.ServeWs)
}

// ServeWs upgrades the connection after validating the admin JWT.
// Browsers cannot set headers on websocket requests, so the token is
// accepted from the query string as well.
func (c *notificationController) ServeWs(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token"))
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.logger.Warn("NotificationController", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid claims"))
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Admin access required"))
	}

	adminIdStr, ok := claims["admin_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Token missing admin_id"))
	}
	adminId, err := uuid.Parse(adminIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid admin id in token"))
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("NotificationController", "Starting WebSocket session", map[string]interface{}{"admin_id": adminId})
			internalWS.ServeWs(c.hub, conn, adminId)
			c.logger.Info("NotificationController", "WebSocket session ended", map[string]interface{}{"admin_id": adminId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
