package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/ports"
)

// publisher ส่ง notification ใหม่เข้า subject กลาง
// ให้ instance อื่น (และ websocket broadcaster) รับไป fan-out ต่อ
type publisher struct {
	client *Client
}

func NewPublisher(client *Client) ports.NotificationPublisherPort {
	return &publisher{client: client}
}

func (p *publisher) Publish(ctx context.Context, notification *models.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	return p.client.conn.Publish(SubjectNotifications, payload)
}
