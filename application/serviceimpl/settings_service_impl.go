package serviceimpl

import (
	"context"
	"fmt"
	"sync"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
)

// settingsService cache settings ไว้ในหน่วยความจำ
// store โหลดครั้งแรกครั้งเดียว write ทุกครั้ง persist + อัปเดต cache
type settingsService struct {
	repo repositories.SettingRepository

	mu      sync.RWMutex
	current models.Settings
	loaded  bool
}

func NewSettingsService(repo repositories.SettingRepository) services.SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) models.Settings {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.current
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.current
	}

	stored, err := s.repo.Load(ctx)
	switch {
	case err != nil:
		// อ่าน store ไม่ได้ใช้ defaults ไปก่อน ไม่ mark ว่าโหลดแล้ว
		// รอบหน้าลองใหม่
		logger.ErrorContext(ctx, "Failed to load settings, using defaults", "error", err)
		return models.DefaultSettings()
	case stored == nil:
		s.current = models.DefaultSettings()
	default:
		s.current = *stored
	}
	s.loaded = true
	return s.current
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (models.Settings, error) {
	settings := s.Get(ctx)

	applyString(&settings.SiteName, req.SiteName)
	applyString(&settings.SiteDescription, req.SiteDescription)
	applyString(&settings.SiteLogo, req.SiteLogo)
	applyString(&settings.ContactEmail, req.ContactEmail)
	applyString(&settings.ContactPhone, req.ContactPhone)
	applyString(&settings.ContactAddress, req.ContactAddress)
	applyString(&settings.Currency, req.Currency)
	applyString(&settings.CurrencySymbol, req.CurrencySymbol)
	applyString(&settings.OrderNotificationEmail, req.OrderNotificationEmail)
	applyBool(&settings.AutoConfirmOrders, req.AutoConfirmOrders)
	applyBool(&settings.RequireOrderConfirmation, req.RequireOrderConfirmation)
	applyFloat(&settings.FreeShippingThreshold, req.FreeShippingThreshold)
	applyFloat(&settings.ShippingCost, req.ShippingCost)
	applyFloat(&settings.TaxRate, req.TaxRate)
	applyBool(&settings.IncludeTaxInPrice, req.IncludeTaxInPrice)
	applyBool(&settings.RequireStrongPasswords, req.RequireStrongPasswords)
	if req.SessionTimeout != nil {
		settings.SessionTimeout = *req.SessionTimeout
	}
	applyBool(&settings.EmailNotifications, req.EmailNotifications)
	applyBool(&settings.SMSNotifications, req.SMSNotifications)
	applyBool(&settings.PushNotifications, req.PushNotifications)

	return s.persist(ctx, settings)
}

func (s *settingsService) Reset(ctx context.Context) (models.Settings, error) {
	return s.persist(ctx, models.DefaultSettings())
}

func (s *settingsService) persist(ctx context.Context, settings models.Settings) (models.Settings, error) {
	if err := s.repo.Save(ctx, settings); err != nil {
		logger.ErrorContext(ctx, "Failed to save settings", "error", err)
		return s.Get(ctx), ErrSettingsSave
	}

	s.mu.Lock()
	s.current = settings
	s.loaded = true
	s.mu.Unlock()

	logger.InfoContext(ctx, "Settings saved")
	return settings, nil
}

// CalculateShippingCost ยอดถึง threshold พอดีก็ส่งฟรีแล้ว
func (s *settingsService) CalculateShippingCost(ctx context.Context, orderTotal float64) float64 {
	settings := s.Get(ctx)
	if orderTotal >= settings.FreeShippingThreshold {
		return 0
	}
	return settings.ShippingCost
}

func (s *settingsService) CalculateTax(ctx context.Context, amount float64) float64 {
	return amount * s.Get(ctx).TaxRate / 100
}

func (s *settingsService) FormatPrice(ctx context.Context, price float64) string {
	return fmt.Sprintf("%.2f %s", price, s.Get(ctx).CurrencySymbol)
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
