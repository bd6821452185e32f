package handlers

import (
	"elfateh-admin/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService         services.AuthService
	CategoryService     services.CategoryService
	ProductService      services.ProductService
	OrderService        services.OrderService
	CouponService       services.CouponService
	UserService         services.UserService
	DashboardService    services.DashboardService
	NotificationService services.NotificationService
	SettingsService     services.SettingsService
	MediaService        services.MediaService
	MaxUploadSize       int64 // ขนาดไฟล์อัปโหลดสูงสุด (bytes)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler         *AuthHandler
	CategoryHandler     *CategoryHandler
	ProductHandler      *ProductHandler
	OrderHandler        *OrderHandler
	CouponHandler       *CouponHandler
	UserHandler         *UserHandler
	DashboardHandler    *DashboardHandler
	NotificationHandler *NotificationHandler
	SettingHandler      *SettingHandler
	MediaHandler        *MediaHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:         NewAuthHandler(services.AuthService),
		CategoryHandler:     NewCategoryHandler(services.CategoryService),
		ProductHandler:      NewProductHandler(services.ProductService),
		OrderHandler:        NewOrderHandler(services.OrderService),
		CouponHandler:       NewCouponHandler(services.CouponService),
		UserHandler:         NewUserHandler(services.UserService, services.MaxUploadSize),
		DashboardHandler:    NewDashboardHandler(services.DashboardService),
		NotificationHandler: NewNotificationHandler(services.NotificationService),
		SettingHandler:      NewSettingHandler(services.SettingsService),
		MediaHandler:        NewMediaHandler(services.MediaService, services.MaxUploadSize),
	}
}
