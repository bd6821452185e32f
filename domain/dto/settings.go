package dto

// === Requests ===

// UpdateSettingsRequest partial update — field ที่เป็น nil จะไม่ถูกแตะ
type UpdateSettingsRequest struct {
	SiteName        *string `json:"siteName" validate:"omitempty,min=1,max=200"`
	SiteDescription *string `json:"siteDescription" validate:"omitempty,max=1000"`
	SiteLogo        *string `json:"siteLogo" validate:"omitempty,url"`

	ContactEmail   *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone   *string `json:"contactPhone" validate:"omitempty,max=30"`
	ContactAddress *string `json:"contactAddress" validate:"omitempty,max=500"`

	Currency       *string `json:"currency" validate:"omitempty,len=3"`
	CurrencySymbol *string `json:"currencySymbol" validate:"omitempty,max=10"`

	OrderNotificationEmail   *string `json:"orderNotificationEmail" validate:"omitempty,email"`
	AutoConfirmOrders        *bool   `json:"autoConfirmOrders"`
	RequireOrderConfirmation *bool   `json:"requireOrderConfirmation"`

	FreeShippingThreshold *float64 `json:"freeShippingThreshold" validate:"omitempty,gte=0"`
	ShippingCost          *float64 `json:"shippingCost" validate:"omitempty,gte=0"`

	TaxRate           *float64 `json:"taxRate" validate:"omitempty,gte=0,lte=100"`
	IncludeTaxInPrice *bool    `json:"includeTaxInPrice"`

	RequireStrongPasswords *bool `json:"requireStrongPasswords"`
	SessionTimeout         *int  `json:"sessionTimeout" validate:"omitempty,gt=0"`

	EmailNotifications *bool `json:"emailNotifications"`
	SMSNotifications   *bool `json:"smsNotifications"`
	PushNotifications  *bool `json:"pushNotifications"`
}
