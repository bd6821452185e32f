package redis

// คีย์ชุดเดียวกับที่ dashboard เดิมเก็บใน browser storage
// เก็บเป็น blob ต่อคีย์ replace-on-write ไม่มี cross-writer consistency
const (
	KeyAuthToken          = "authToken"
	KeyAdminUser          = "adminUser"
	KeyRememberedUsername = "rememberedUsername"
	KeyRememberMe         = "rememberMe"
	KeyNotifications      = "notifications"
	KeyAppSettings        = "app_settings"
)
