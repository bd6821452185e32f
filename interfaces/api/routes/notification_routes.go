package routes

import (
	"github.com/gofiber/fiber/v2"

	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/interfaces/api/middleware"
)

func SetupNotificationRoutes(api fiber.Router, h *handlers.Handlers) {
	notifications := api.Group("/notifications", middleware.Protected())

	notifications.Get("/", h.NotificationHandler.List)
	notifications.Get("/unread-count", h.NotificationHandler.UnreadCount)
	notifications.Post("/", h.NotificationHandler.Create)
	notifications.Patch("/read-all", h.NotificationHandler.MarkAllAsRead)
	notifications.Patch("/:id/read", h.NotificationHandler.MarkAsRead)
	notifications.Delete("/:id", h.NotificationHandler.Delete)
	notifications.Delete("/", h.NotificationHandler.ClearAll)
}
