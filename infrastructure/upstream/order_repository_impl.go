package upstream

import (
	"context"
	"encoding/json"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/pkg/pagination"
)

type orderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) repositories.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) List(ctx context.Context, filters repositories.OrderFilters) ([]models.Order, pagination.Info, error) {
	query := map[string]string{
		"page":      positiveInt(filters.Page),
		"limit":     positiveInt(filters.Limit),
		"status":    filters.Status,
		"search":    filters.Search,
		"startDate": filters.StartDate,
		"endDate":   filters.EndDate,
		"sort":      filters.Sort,
	}
	raw, err := r.client.Get(ctx, "/orders", query)
	if err != nil {
		return nil, pagination.Info{}, err
	}

	env, err := DecodeList("/orders", raw)
	if err != nil {
		return nil, pagination.Info{}, err
	}
	var wires []wireOrder
	if err := json.Unmarshal(env.Items, &wires); err != nil {
		return nil, pagination.Info{}, &UnexpectedEnvelopeError{Endpoint: "/orders", Snippet: snippet(env.Items)}
	}
	orders := make([]models.Order, 0, len(wires))
	for i := range wires {
		orders = append(orders, wires[i].toModel())
	}
	return orders, envInfo(env, filters.Page, filters.Limit, len(orders)), nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	raw, err := r.client.Get(ctx, "/orders/"+id, nil)
	if err != nil {
		return nil, err
	}
	obj, err := DecodeObject("/orders/"+id, raw)
	if err != nil {
		return nil, err
	}
	var wire wireOrder
	if err := json.Unmarshal(obj, &wire); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: "/orders/" + id, Snippet: snippet(obj)}
	}
	order := wire.toModel()
	return &order, nil
}

// UpdateStatus server เป็นคนตัดสิน — ตอบ success=false ได้โดยไม่ error
func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	raw, err := r.client.Patch(ctx, "/orders/"+id+"/status", map[string]string{"status": status})
	if err != nil {
		return false, err
	}
	return decodeAck(raw), nil
}

func (r *orderRepository) UpdatePayment(ctx context.Context, id, paymentStatus string) (bool, error) {
	raw, err := r.client.Patch(ctx, "/orders/"+id+"/payment", map[string]string{"paymentStatus": paymentStatus})
	if err != nil {
		return false, err
	}
	return decodeAck(raw), nil
}

// decodeAck ตีความคำตอบ mutation: {success:bool} ถ้ามี ไม่มีถือว่าสำเร็จ
// (2xx มาถึงตรงนี้แล้ว)
func decodeAck(raw []byte) bool {
	var ack struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &ack); err != nil {
		return true
	}
	return ack.Success == nil || *ack.Success
}
