package routes

import (
	"github.com/gofiber/fiber/v2"

	websocketManager "elfateh-admin/infrastructure/websocket"
	"elfateh-admin/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, hub *websocketManager.Hub) {
	// Setup health and root routes
	SetupHealthRoutes(app, hub)

	// API version group
	api := app.Group("/api/v1")

	// Setup all route groups
	SetupAuthRoutes(api, h)
	SetupCategoryRoutes(api, h)
	SetupProductRoutes(api, h)
	SetupOrderRoutes(api, h)
	SetupCouponRoutes(api, h)
	SetupUserRoutes(api, h)
	SetupDashboardRoutes(api, h)
	SetupNotificationRoutes(api, h)
	SetupSettingRoutes(api, h)
	SetupUploadRoutes(api, h)

	// Setup WebSocket routes (needs app, not api group)
	SetupWebSocketRoutes(app, hub)
}
