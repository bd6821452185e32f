package serviceimpl

import (
	"context"
	"errors"
	"time"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/logger"
)

type couponService struct {
	repo     repositories.CouponRepository
	settings services.SettingsService
}

func NewCouponService(repo repositories.CouponRepository, settings services.SettingsService) services.CouponService {
	return &couponService{repo: repo, settings: settings}
}

func (s *couponService) List(ctx context.Context, query *dto.CouponListQuery) (*dto.CouponPage, error) {
	filters := repositories.CouponFilters{
		Page:         query.Page,
		Limit:        defaultLimit(query.Limit),
		Search:       query.Search,
		Status:       query.Status,
		DiscountType: query.DiscountType,
	}

	coupons, info, err := s.repo.List(ctx, filters)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to load coupons", "error", err)
		return nil, ErrCouponsLoad
	}

	currency := s.settings.Get(ctx).Currency
	return &dto.CouponPage{Items: dto.CouponsToResponses(coupons, currency), Info: info}, nil
}

func (s *couponService) GetByID(ctx context.Context, id string) (*models.Coupon, error) {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.WarnContext(ctx, "Failed to load coupon", "coupon_id", id, "error", err)
		return nil, nil
	}
	return coupon, nil
}

func (s *couponService) Create(ctx context.Context, req *dto.CreateCouponRequest) (*models.Coupon, error) {
	expiresAt, err := parseExpiry(req.ExpiresAt)
	if err != nil {
		logger.WarnContext(ctx, "Invalid coupon expiry", "expires_at", req.ExpiresAt, "error", err)
		return nil, ErrCouponCreate
	}

	coupon := &models.Coupon{
		Code:           req.Code,
		Discount:       req.Discount,
		DiscountType:   req.DiscountType,
		MinOrderAmount: req.MinOrderAmount,
		MaxDiscount:    req.MaxDiscount,
		UsageLimit:     req.UsageLimit,
		Description:    req.Description,
		ExpiresAt:      expiresAt,
		IsActive:       req.IsActive == nil || *req.IsActive,
	}

	created, err := s.repo.Create(ctx, coupon)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create coupon", "code", req.Code, "error", err)
		return nil, ErrCouponCreate
	}
	return created, nil
}

func (s *couponService) Update(ctx context.Context, id string, req *dto.UpdateCouponRequest) (*models.Coupon, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		logger.WarnContext(ctx, "Coupon to update not found", "coupon_id", id, "error", err)
		return nil, ErrCouponUpdate
	}

	applyString(&existing.Code, req.Code)
	if req.Discount != nil {
		existing.Discount = *req.Discount
	}
	applyString(&existing.DiscountType, req.DiscountType)
	if req.MinOrderAmount != nil {
		existing.MinOrderAmount = *req.MinOrderAmount
	}
	if req.MaxDiscount != nil {
		existing.MaxDiscount = *req.MaxDiscount
	}
	if req.UsageLimit != nil {
		existing.UsageLimit = *req.UsageLimit
	}
	applyString(&existing.Description, req.Description)
	if req.ExpiresAt != nil {
		expiresAt, err := parseExpiry(*req.ExpiresAt)
		if err != nil {
			return nil, ErrCouponUpdate
		}
		existing.ExpiresAt = expiresAt
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, id, existing)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update coupon", "coupon_id", id, "error", err)
		return nil, ErrCouponUpdate
	}
	return updated, nil
}

func (s *couponService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete coupon", "coupon_id", id, "error", err)
		return ErrCouponDelete
	}
	return nil
}

func (s *couponService) Toggle(ctx context.Context, id string, isActive bool) (*models.Coupon, error) {
	coupon, err := s.repo.Toggle(ctx, id, isActive)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to toggle coupon", "coupon_id", id, "active", isActive, "error", err)
		return nil, ErrCouponUpdate
	}
	return coupon, nil
}

// parseExpiry รับทั้ง RFC3339 และ date เปล่า ๆ จากฟอร์ม
func parseExpiry(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unrecognized expiry format")
}
