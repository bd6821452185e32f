package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	websocketManager "elfateh-admin/infrastructure/websocket"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

// WebSocketHandler รับ connection จาก dashboard ที่เปิด feed แจ้งเตือนค้างไว้
type WebSocketHandler struct {
	hub *websocketManager.Hub
}

func NewWebSocketHandler(hub *websocketManager.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket loop อ่านอย่างเดียว — dashboard ไม่ส่งอะไรกลับมา
// นอกจาก ping frame ซึ่ง library จัดการให้
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	adminID := "anonymous"
	if userContext := c.Locals("user"); userContext != nil {
		if user, ok := userContext.(*utils.UserContext); ok {
			adminID = user.ID
		}
	}

	h.hub.RegisterClient(c, adminID)
	defer h.hub.UnregisterClient(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			logger.Debug("WebSocket connection closed", "admin_id", adminID, "error", err)
			break
		}
	}
}
