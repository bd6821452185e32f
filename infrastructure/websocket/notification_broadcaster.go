package websocket

import (
	"context"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/ports"
	"elfateh-admin/pkg/logger"
)

// NotificationBroadcaster ต่อ event bus เข้า websocket hub
// notification ใหม่จาก instance ไหนก็ตามถูกส่งให้ dashboard ทุกตัวที่ต่ออยู่
type NotificationBroadcaster struct {
	hub        *Hub
	subscriber ports.NotificationSubscriberPort
}

func NewNotificationBroadcaster(hub *Hub, subscriber ports.NotificationSubscriberPort) *NotificationBroadcaster {
	return &NotificationBroadcaster{hub: hub, subscriber: subscriber}
}

// Start เริ่มรับ event แล้ว fan-out
func (b *NotificationBroadcaster) Start(ctx context.Context) error {
	return b.subscriber.Subscribe(ctx, func(notification *models.Notification) {
		b.hub.BroadcastToAll("notification", notification)
	})
}

// Stop หยุดรับ event
func (b *NotificationBroadcaster) Stop() {
	if err := b.subscriber.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe notification broadcaster", "error", err)
	}
}
