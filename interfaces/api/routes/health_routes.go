package routes

import (
	"github.com/gofiber/fiber/v2"

	websocketManager "elfateh-admin/infrastructure/websocket"
)

func SetupHealthRoutes(app *fiber.App, hub *websocketManager.Hub) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"message":    "Server is running",
			"service":    "El Fateh Admin Gateway",
			"ws_clients": hub.TotalClients(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to El Fateh Admin Gateway",
			"version": "1.0.0",
			"docs":    "/api/v1",
			"health":  "/health",
		})
	})
}
