package serviceimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/ports"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
)

// notificationService feed ในหน่วยความจำเป็นตัวจริงเสมอ
// store เป็นแค่ snapshot — persist พังก็แค่ log feed ใช้ต่อได้
type notificationService struct {
	repo      repositories.NotificationRepository
	publisher ports.NotificationPublisherPort
	settings  services.SettingsService

	mu   sync.RWMutex
	feed []models.Notification
}

func NewNotificationService(
	repo repositories.NotificationRepository,
	publisher ports.NotificationPublisherPort,
	settings services.SettingsService,
) services.NotificationService {
	s := &notificationService{
		repo:      repo,
		publisher: publisher,
		settings:  settings,
		feed:      []models.Notification{},
	}
	s.rehydrate()
	return s
}

// rehydrate โหลด feed เดิมตอน start — โหลดไม่ได้เริ่มจาก feed ว่าง
func (s *notificationService) rehydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, err := s.repo.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load stored notifications, starting empty", "error", err)
		return
	}
	if len(stored) > models.MaxNotifications {
		stored = stored[:models.MaxNotifications]
	}
	s.feed = stored
	logger.Info("Notification feed loaded", "count", len(stored))
}

func (s *notificationService) Add(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	notification := models.Notification{
		ID:        uuid.New().String(),
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Timestamp: time.Now(),
		Priority:  priority,
	}
	s.append(ctx, notification)
	return &notification, nil
}

// append ใหม่สุดอยู่หน้าสุด เกิน 100 ตัดท้ายทิ้ง
func (s *notificationService) append(ctx context.Context, notification models.Notification) {
	s.mu.Lock()
	s.feed = append([]models.Notification{notification}, s.feed...)
	if len(s.feed) > models.MaxNotifications {
		s.feed = s.feed[:models.MaxNotifications]
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)

	// push ไป dashboard เฉพาะตอนเปิด push notifications ไว้
	if s.settings.Get(ctx).PushNotifications && s.publisher != nil {
		if err := s.publisher.Publish(ctx, &notification); err != nil {
			logger.WarnContext(ctx, "Failed to publish notification event", "error", err)
		}
	}
}

func (s *notificationService) List(ctx context.Context, query *dto.NotificationListQuery) *dto.NotificationListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]models.Notification, 0, len(s.feed))
	for _, n := range s.feed {
		if query != nil && query.Type != "" && n.Type != query.Type {
			continue
		}
		if query != nil && query.UnreadOnly && n.IsRead {
			continue
		}
		notifications = append(notifications, n)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   s.unreadLocked(),
	}
}

func (s *notificationService) UnreadCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked()
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) error {
	s.mu.Lock()
	for i := range s.feed {
		if s.feed[i].ID == id {
			s.feed[i].IsRead = true
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) error {
	s.mu.Lock()
	for i := range s.feed {
		s.feed[i].IsRead = true
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	for i := range s.feed {
		if s.feed[i].ID == id {
			s.feed = append(s.feed[:i], s.feed[i+1:]...)
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return nil
}

func (s *notificationService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	s.feed = []models.Notification{}
	s.mu.Unlock()

	s.persist(ctx, []models.Notification{})
	return nil
}

// === Typed producers ===
// ข้อความภาษาอาหรับตามที่ dashboard แสดงให้ admin

func (s *notificationService) NotifyNewOrder(ctx context.Context, orderID, customerName string, total float64) {
	s.appendTyped(ctx, models.Notification{
		Type:     models.NotificationTypeOrder,
		Title:    "طلب جديد",
		Message:  fmt.Sprintf("تم استلام طلب جديد من %s بقيمة %s", customerName, s.settings.FormatPrice(ctx, total)),
		OrderID:  orderID,
		Priority: models.PriorityHigh,
	})
}

func (s *notificationService) NotifyLowStock(ctx context.Context, productID, productName string, currentStock int) {
	s.appendTyped(ctx, models.Notification{
		Type:      models.NotificationTypeProduct,
		Title:     "تحذير: مخزون منخفض",
		Message:   fmt.Sprintf("المنتج \"%s\" وصل إلى الحد الأدنى من المخزون (%d قطعة متبقية)", productName, currentStock),
		ProductID: productID,
		Priority:  models.PriorityHigh,
	})
}

func (s *notificationService) NotifyOrderConfirmed(ctx context.Context, orderID, customerName string) {
	s.appendTyped(ctx, models.Notification{
		Type:     models.NotificationTypeOrder,
		Title:    "تم تأكيد الطلب",
		Message:  fmt.Sprintf("تم تأكيد طلب العميل %s", customerName),
		OrderID:  orderID,
		Priority: models.PriorityMedium,
	})
}

func (s *notificationService) NotifyOrderShipped(ctx context.Context, orderID, customerName, trackingNumber string) {
	message := fmt.Sprintf("تم شحن طلب العميل %s", customerName)
	if trackingNumber != "" {
		message += fmt.Sprintf(" - رقم التتبع: %s", trackingNumber)
	}
	s.appendTyped(ctx, models.Notification{
		Type:     models.NotificationTypeOrder,
		Title:    "تم شحن الطلب",
		Message:  message,
		OrderID:  orderID,
		Priority: models.PriorityMedium,
	})
}

func (s *notificationService) NotifyOrderDelivered(ctx context.Context, orderID, customerName string) {
	s.appendTyped(ctx, models.Notification{
		Type:     models.NotificationTypeOrder,
		Title:    "تم تسليم الطلب",
		Message:  fmt.Sprintf("تم تسليم طلب العميل %s بنجاح", customerName),
		OrderID:  orderID,
		Priority: models.PriorityLow,
	})
}

func (s *notificationService) NotifyOrderCancelled(ctx context.Context, orderID, customerName, reason string) {
	message := fmt.Sprintf("تم إلغاء طلب العميل %s", customerName)
	if reason != "" {
		message += fmt.Sprintf(" - السبب: %s", reason)
	}
	s.appendTyped(ctx, models.Notification{
		Type:     models.NotificationTypeOrder,
		Title:    "تم إلغاء الطلب",
		Message:  message,
		OrderID:  orderID,
		Priority: models.PriorityMedium,
	})
}

func (s *notificationService) NotifySystem(ctx context.Context, message, priority string) {
	if priority == "" {
		priority = models.PriorityMedium
	}
	s.appendTyped(ctx, models.Notification{
		Type:     models.NotificationTypeSystem,
		Title:    "إشعار النظام",
		Message:  message,
		Priority: priority,
	})
}

func (s *notificationService) NotifyPromotion(ctx context.Context, title, message string) {
	s.appendTyped(ctx, models.Notification{
		Type:     models.NotificationTypePromotion,
		Title:    title,
		Message:  message,
		Priority: models.PriorityLow,
	})
}

func (s *notificationService) appendTyped(ctx context.Context, notification models.Notification) {
	notification.ID = uuid.New().String()
	notification.Timestamp = time.Now()
	s.append(ctx, notification)
}

// persist เขียน snapshot ทั้งก้อนทับของเดิม
// พังแค่ log — feed ในหน่วยความจำยังถูกต้อง
func (s *notificationService) persist(ctx context.Context, snapshot []models.Notification) {
	if err := s.repo.Save(ctx, snapshot); err != nil {
		logger.WarnContext(ctx, "Failed to persist notification feed", "error", err)
	}
}

func (s *notificationService) snapshotLocked() []models.Notification {
	snapshot := make([]models.Notification, len(s.feed))
	copy(snapshot, s.feed)
	return snapshot
}

func (s *notificationService) unreadLocked() int {
	count := 0
	for i := range s.feed {
		if !s.feed[i].IsRead {
			count++
		}
	}
	return count
}
