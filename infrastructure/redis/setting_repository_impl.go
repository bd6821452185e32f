package redis

import (
	"context"
	"errors"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
)

// settingRepository เก็บ settings ทั้งก้อนใต้คีย์ app_settings
type settingRepository struct {
	client *Client
}

func NewSettingRepository(client *Client) repositories.SettingRepository {
	return &settingRepository{client: client}
}

// Load คืน nil ถ้ายังไม่เคยเก็บ (ให้ service ใช้ defaults)
// blob เก่าที่ field ไม่ครบจะถูก merge ทับ defaults
func (r *settingRepository) Load(ctx context.Context) (*models.Settings, error) {
	settings := models.DefaultSettings()
	err := r.client.GetJSON(ctx, KeyAppSettings, &settings)
	if errors.Is(err, Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingRepository) Save(ctx context.Context, settings models.Settings) error {
	return r.client.SetJSON(ctx, KeyAppSettings, settings, 0)
}
