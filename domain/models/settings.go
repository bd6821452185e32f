package models

// Settings การตั้งค่าระบบของร้าน เก็บเป็น JSON blob เดียวใต้ key app_settings
type Settings struct {
	// ข้อมูลร้าน
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	SiteLogo        string `json:"siteLogo"`

	// ข้อมูลติดต่อ
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `json:"contactAddress"`

	// สกุลเงิน
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`

	// การจัดการ order
	OrderNotificationEmail   string `json:"orderNotificationEmail"`
	AutoConfirmOrders        bool   `json:"autoConfirmOrders"`
	RequireOrderConfirmation bool   `json:"requireOrderConfirmation"`

	// ค่าจัดส่ง
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	ShippingCost          float64 `json:"shippingCost"`

	// ภาษี
	TaxRate           float64 `json:"taxRate"`
	IncludeTaxInPrice bool    `json:"includeTaxInPrice"`

	// ความปลอดภัย
	RequireStrongPasswords bool `json:"requireStrongPasswords"`
	SessionTimeout         int  `json:"sessionTimeout"` // นาที

	// ช่องทางแจ้งเตือน
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
}

// DefaultSettings ค่า default ของร้าน El Fateh
func DefaultSettings() Settings {
	return Settings{
		SiteName:                 "متجر الفتح",
		SiteDescription:          "متجر إلكتروني متخصص في بيع المنتجات عالية الجودة",
		SiteLogo:                 "",
		ContactEmail:             "info@elfateh.com",
		ContactPhone:             "+20 123 456 789",
		ContactAddress:           "القاهرة، مصر",
		Currency:                 "EGP",
		CurrencySymbol:           "ج.م",
		OrderNotificationEmail:   "orders@elfateh.com",
		AutoConfirmOrders:        false,
		RequireOrderConfirmation: true,
		FreeShippingThreshold:    500,
		ShippingCost:             50,
		TaxRate:                  14,
		IncludeTaxInPrice:        false,
		RequireStrongPasswords:   true,
		SessionTimeout:           30,
		EmailNotifications:       true,
		SMSNotifications:         false,
		PushNotifications:        true,
	}
}
