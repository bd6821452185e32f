package upstream

import (
	"context"
	"encoding/json"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/pkg/pagination"
)

type couponRepository struct {
	client *Client
}

func NewCouponRepository(client *Client) repositories.CouponRepository {
	return &couponRepository{client: client}
}

func (r *couponRepository) List(ctx context.Context, filters repositories.CouponFilters) ([]models.Coupon, pagination.Info, error) {
	query := map[string]string{
		"page":         positiveInt(filters.Page),
		"limit":        positiveInt(filters.Limit),
		"search":       filters.Search,
		"status":       filters.Status,
		"discountType": filters.DiscountType,
	}
	raw, err := r.client.Get(ctx, "/discount-codes", query)
	if err != nil {
		return nil, pagination.Info{}, err
	}

	env, err := DecodeList("/discount-codes", raw)
	if err != nil {
		return nil, pagination.Info{}, err
	}
	var wires []wireCoupon
	if err := json.Unmarshal(env.Items, &wires); err != nil {
		return nil, pagination.Info{}, &UnexpectedEnvelopeError{Endpoint: "/discount-codes", Snippet: snippet(env.Items)}
	}
	coupons := make([]models.Coupon, 0, len(wires))
	for i := range wires {
		coupons = append(coupons, wires[i].toModel())
	}
	return coupons, envInfo(env, filters.Page, filters.Limit, len(coupons)), nil
}

func (r *couponRepository) GetByID(ctx context.Context, id string) (*models.Coupon, error) {
	raw, err := r.client.Get(ctx, "/discount-codes/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeCoupon("/discount-codes/"+id, raw)
}

func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error) {
	raw, err := r.client.Post(ctx, "/discount-codes", couponPayload(coupon))
	if err != nil {
		return nil, err
	}
	return decodeCoupon("/discount-codes", raw)
}

func (r *couponRepository) Update(ctx context.Context, id string, coupon *models.Coupon) (*models.Coupon, error) {
	raw, err := r.client.Put(ctx, "/discount-codes/"+id, couponPayload(coupon))
	if err != nil {
		return nil, err
	}
	return decodeCoupon("/discount-codes/"+id, raw)
}

func (r *couponRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, "/discount-codes/"+id)
	return err
}

func (r *couponRepository) Toggle(ctx context.Context, id string, isActive bool) (*models.Coupon, error) {
	raw, err := r.client.Patch(ctx, "/discount-codes/"+id, map[string]bool{"isActive": isActive})
	if err != nil {
		return nil, err
	}
	return decodeCoupon("/discount-codes/"+id, raw)
}

func decodeCoupon(endpoint string, raw []byte) (*models.Coupon, error) {
	obj, err := DecodeObject(endpoint, raw)
	if err != nil {
		return nil, err
	}
	var wire wireCoupon
	if err := json.Unmarshal(obj, &wire); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(obj)}
	}
	coupon := wire.toModel()
	return &coupon, nil
}

func couponPayload(cp *models.Coupon) map[string]any {
	payload := map[string]any{
		"code":     cp.Code,
		"discount": cp.Discount,
		"isActive": cp.IsActive,
	}
	if cp.DiscountType != "" {
		payload["discountType"] = cp.DiscountType
	}
	if cp.MinOrderAmount > 0 {
		payload["minOrderAmount"] = cp.MinOrderAmount
	}
	if cp.MaxDiscount > 0 {
		payload["maxDiscount"] = cp.MaxDiscount
	}
	if cp.UsageLimit > 0 {
		payload["usageLimit"] = cp.UsageLimit
	}
	if cp.Description != "" {
		payload["description"] = cp.Description
	}
	if cp.ExpiresAt != nil {
		payload["expiresAt"] = cp.ExpiresAt
	}
	return payload
}
