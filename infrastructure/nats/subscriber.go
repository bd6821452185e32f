package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/ports"
	"elfateh-admin/pkg/logger"
)

// subscriber รับ notification events จาก subject กลาง
type subscriber struct {
	client *Client
	sub    *nats.Subscription
}

func NewSubscriber(client *Client) ports.NotificationSubscriberPort {
	return &subscriber{client: client}
}

func (s *subscriber) Subscribe(_ context.Context, handler ports.NotificationHandler) error {
	sub, err := s.client.conn.Subscribe(SubjectNotifications, func(msg *nats.Msg) {
		var notification models.Notification
		if err := json.Unmarshal(msg.Data, &notification); err != nil {
			logger.Warn("Dropping malformed notification event", "error", err)
			return
		}
		handler(&notification)
	})
	if err != nil {
		return err
	}
	s.sub = sub
	logger.Info("Subscribed to notification events", "subject", SubjectNotifications)
	return nil
}

func (s *subscriber) Unsubscribe() error {
	if s.sub == nil {
		return nil
	}
	return s.sub.Unsubscribe()
}
