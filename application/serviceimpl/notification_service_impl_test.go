package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

type fakeNotificationRepo struct {
	stored  []models.Notification
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeNotificationRepo) Load(ctx context.Context) ([]models.Notification, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.stored, nil
}

func (f *fakeNotificationRepo) Save(ctx context.Context, notifications []models.Notification) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = notifications
	return nil
}

func newNotificationService(repo *fakeNotificationRepo) *notificationService {
	settings := NewSettingsService(&fakeSettingRepo{})
	return NewNotificationService(repo, nil, settings).(*notificationService)
}

func TestNotificationAddPrepends(t *testing.T) {
	svc := newNotificationService(&fakeNotificationRepo{})
	ctx := context.Background()

	first, err := svc.Add(ctx, &dto.CreateNotificationRequest{Type: models.NotificationTypeSystem, Title: "a", Message: "a"})
	require.NoError(t, err)
	second, err := svc.Add(ctx, &dto.CreateNotificationRequest{Type: models.NotificationTypeSystem, Title: "b", Message: "b"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())
	assert.Equal(t, models.PriorityMedium, first.Priority, "priority defaults to medium")

	// ใหม่สุดอยู่หน้าสุด
	resp := svc.List(ctx, &dto.NotificationListQuery{})
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, second.ID, resp.Notifications[0].ID)
	assert.Equal(t, first.ID, resp.Notifications[1].ID)
	assert.Equal(t, 2, resp.UnreadCount)
}

func TestNotificationCapEvictsOldest(t *testing.T) {
	svc := newNotificationService(&fakeNotificationRepo{})
	ctx := context.Background()

	for i := 0; i < models.MaxNotifications+5; i++ {
		_, err := svc.Add(ctx, &dto.CreateNotificationRequest{
			Type:    models.NotificationTypeSystem,
			Title:   fmt.Sprintf("n-%d", i),
			Message: "m",
		})
		require.NoError(t, err)
	}

	resp := svc.List(ctx, nil)
	require.Len(t, resp.Notifications, models.MaxNotifications)

	// ตัวล่าสุดอยู่ ตัวเก่าสุดถูกเขี่ยออก
	assert.Equal(t, fmt.Sprintf("n-%d", models.MaxNotifications+4), resp.Notifications[0].Title)
	for _, n := range resp.Notifications {
		assert.NotEqual(t, "n-0", n.Title)
	}
}

func TestNotificationMarkAsRead(t *testing.T) {
	svc := newNotificationService(&fakeNotificationRepo{})
	ctx := context.Background()

	n1, _ := svc.Add(ctx, &dto.CreateNotificationRequest{Type: "system", Title: "a", Message: "a"})
	svc.Add(ctx, &dto.CreateNotificationRequest{Type: "system", Title: "b", Message: "b"})

	require.NoError(t, svc.MarkAsRead(ctx, n1.ID))
	assert.Equal(t, 1, svc.UnreadCount(ctx))

	require.NoError(t, svc.MarkAllAsRead(ctx))
	assert.Equal(t, 0, svc.UnreadCount(ctx))
}

func TestNotificationListFilters(t *testing.T) {
	svc := newNotificationService(&fakeNotificationRepo{})
	ctx := context.Background()

	svc.Add(ctx, &dto.CreateNotificationRequest{Type: models.NotificationTypeOrder, Title: "o", Message: "o"})
	read, _ := svc.Add(ctx, &dto.CreateNotificationRequest{Type: models.NotificationTypeSystem, Title: "s", Message: "s"})
	svc.MarkAsRead(ctx, read.ID)

	byType := svc.List(ctx, &dto.NotificationListQuery{Type: models.NotificationTypeOrder})
	require.Len(t, byType.Notifications, 1)
	assert.Equal(t, "o", byType.Notifications[0].Title)

	unread := svc.List(ctx, &dto.NotificationListQuery{UnreadOnly: true})
	require.Len(t, unread.Notifications, 1)
	assert.Equal(t, "o", unread.Notifications[0].Title)
}

func TestNotificationDeleteAndClear(t *testing.T) {
	svc := newNotificationService(&fakeNotificationRepo{})
	ctx := context.Background()

	n1, _ := svc.Add(ctx, &dto.CreateNotificationRequest{Type: "system", Title: "a", Message: "a"})
	svc.Add(ctx, &dto.CreateNotificationRequest{Type: "system", Title: "b", Message: "b"})

	require.NoError(t, svc.Delete(ctx, n1.ID))
	assert.Len(t, svc.List(ctx, nil).Notifications, 1)

	require.NoError(t, svc.ClearAll(ctx))
	assert.Empty(t, svc.List(ctx, nil).Notifications)
	assert.Equal(t, 0, svc.UnreadCount(ctx))
}

func TestNotificationPersistFailureTolerated(t *testing.T) {
	repo := &fakeNotificationRepo{saveErr: errors.New("store down")}
	svc := newNotificationService(repo)
	ctx := context.Background()

	// persist พังแต่ feed ในหน่วยความจำยังทำงาน
	_, err := svc.Add(ctx, &dto.CreateNotificationRequest{Type: "system", Title: "a", Message: "a"})
	require.NoError(t, err)
	assert.Len(t, svc.List(ctx, nil).Notifications, 1)
}

func TestNotificationRehydrateFromStore(t *testing.T) {
	repo := &fakeNotificationRepo{
		stored: []models.Notification{
			{ID: "n1", Type: "order", Title: "stored", IsRead: true},
			{ID: "n2", Type: "system", Title: "stored too"},
		},
	}
	svc := newNotificationService(repo)

	resp := svc.List(context.Background(), nil)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, "n1", resp.Notifications[0].ID)
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestNotificationTypedProducers(t *testing.T) {
	svc := newNotificationService(&fakeNotificationRepo{})
	ctx := context.Background()

	svc.NotifyNewOrder(ctx, "ord-1", "أحمد", 750)
	svc.NotifyLowStock(ctx, "prod-1", "خلاط", 3)
	svc.NotifyOrderShipped(ctx, "ord-1", "أحمد", "TRK-99")

	resp := svc.List(ctx, nil)
	require.Len(t, resp.Notifications, 3)

	shipped := resp.Notifications[0]
	assert.Equal(t, models.NotificationTypeOrder, shipped.Type)
	assert.Equal(t, "ord-1", shipped.OrderID)
	assert.Contains(t, shipped.Message, "TRK-99")

	lowStock := resp.Notifications[1]
	assert.Equal(t, models.NotificationTypeProduct, lowStock.Type)
	assert.Equal(t, "prod-1", lowStock.ProductID)
	assert.Equal(t, models.PriorityHigh, lowStock.Priority)
	assert.Contains(t, lowStock.Message, "خلاط")

	newOrder := resp.Notifications[2]
	assert.Equal(t, models.PriorityHigh, newOrder.Priority)
	assert.Contains(t, newOrder.Message, "أحمد")
	assert.Contains(t, newOrder.Message, "750.00")
	assert.NotEmpty(t, newOrder.ID)
}
