package redis

import (
	"context"
	"errors"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
)

// notificationRepository เก็บ feed ทั้งก้อนเป็น JSON array ใต้คีย์เดียว
// replace-on-write เหมือน browser storage เดิม
type notificationRepository struct {
	client *Client
}

func NewNotificationRepository(client *Client) repositories.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) Load(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.client.GetJSON(ctx, KeyNotifications, &notifications)
	if errors.Is(err, Nil) {
		return []models.Notification{}, nil
	}
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) Save(ctx context.Context, notifications []models.Notification) error {
	return r.client.SetJSON(ctx, KeyNotifications, notifications, 0)
}
