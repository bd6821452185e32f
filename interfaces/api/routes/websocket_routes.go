package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	websocketManager "elfateh-admin/infrastructure/websocket"
	"elfateh-admin/interfaces/api/middleware"
	websocketHandler "elfateh-admin/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, hub *websocketManager.Hub) {
	wsHandler := websocketHandler.NewWebSocketHandler(hub)

	// WebSocket with optional authentication
	app.Use("/ws", middleware.Optional(), wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
