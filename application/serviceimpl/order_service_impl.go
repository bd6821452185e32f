package serviceimpl

import (
	"context"
	"errors"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/logger"
)

type orderService struct {
	repo          repositories.OrderRepository
	notifications services.NotificationService
}

func NewOrderService(repo repositories.OrderRepository, notifications services.NotificationService) services.OrderService {
	return &orderService{repo: repo, notifications: notifications}
}

func (s *orderService) List(ctx context.Context, query *dto.OrderListQuery) (*dto.OrderPage, error) {
	filters := repositories.OrderFilters{
		Page:      query.Page,
		Limit:     defaultLimit(query.Limit),
		Status:    query.Status,
		Search:    query.Search,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Sort:      query.Sort,
	}

	orders, info, err := s.repo.List(ctx, filters)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to load orders", "error", err)
		return nil, ErrOrdersLoad
	}
	return &dto.OrderPage{Items: orders, Info: info}, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.WarnContext(ctx, "Failed to load order", "order_id", id, "error", err)
		return nil, nil
	}
	return order, nil
}

// UpdateStatus server ตัดสินว่าเปลี่ยนได้หรือไม่
// เปลี่ยนสำเร็จแล้วยิง notification เข้า feed ตามสถานะใหม่
func (s *orderService) UpdateStatus(ctx context.Context, id string, status string) (bool, error) {
	// ดึง order ก่อนเพื่อเอาชื่อลูกค้าไปใส่ notification
	order, _ := s.repo.GetByID(ctx, id)

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update order status", "order_id", id, "status", status, "error", err)
		return false, ErrOrderUpdate
	}

	if updated && order != nil {
		s.notifyStatusChange(ctx, order, status)
	}
	return updated, nil
}

func (s *orderService) UpdatePayment(ctx context.Context, id string, paymentStatus string) (bool, error) {
	updated, err := s.repo.UpdatePayment(ctx, id, paymentStatus)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update payment status", "order_id", id, "payment_status", paymentStatus, "error", err)
		return false, ErrOrderUpdate
	}
	return updated, nil
}

func (s *orderService) notifyStatusChange(ctx context.Context, order *models.Order, status string) {
	customer := order.CustomerInfo.Name

	switch status {
	case models.OrderStatusConfirmed:
		s.notifications.NotifyOrderConfirmed(ctx, order.ID, customer)
	case models.OrderStatusShipped:
		s.notifications.NotifyOrderShipped(ctx, order.ID, customer, "")
	case models.OrderStatusDelivered:
		s.notifications.NotifyOrderDelivered(ctx, order.ID, customer)
	case models.OrderStatusCancelled:
		s.notifications.NotifyOrderCancelled(ctx, order.ID, customer, "")
	}
}
