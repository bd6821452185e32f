package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
)

type fakeSettingRepo struct {
	stored  *models.Settings
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeSettingRepo) Load(ctx context.Context) (*models.Settings, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.stored, nil
}

func (f *fakeSettingRepo) Save(ctx context.Context, settings models.Settings) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = &settings
	return nil
}

func TestSettingsGetDefaultsWhenEmpty(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{})

	settings := svc.Get(context.Background())
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSettingsLoadErrorRetriesNextCall(t *testing.T) {
	repo := &fakeSettingRepo{
		stored:  &models.Settings{SiteName: "stored", CurrencySymbol: "ج.م"},
		loadErr: errors.New("store unavailable"),
	}
	svc := NewSettingsService(repo)

	// โหลดพังได้ defaults ไปก่อน
	assert.Equal(t, models.DefaultSettings().SiteName, svc.Get(context.Background()).SiteName)

	// store กลับมา — call ถัดไปเห็นค่าที่เก็บไว้
	repo.loadErr = nil
	assert.Equal(t, "stored", svc.Get(context.Background()).SiteName)
}

func TestSettingsUpdatePartialMerge(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingsService(repo)

	cost := 75.0
	updated, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{ShippingCost: &cost})
	require.NoError(t, err)

	// field ที่ส่งมาเปลี่ยน ที่เหลือคง default
	assert.Equal(t, 75.0, updated.ShippingCost)
	assert.Equal(t, models.DefaultSettings().SiteName, updated.SiteName)
	assert.Equal(t, 1, repo.saves)

	// cache อัปเดตด้วย
	assert.Equal(t, 75.0, svc.Get(context.Background()).ShippingCost)
}

func TestSettingsUpdateSaveFailure(t *testing.T) {
	repo := &fakeSettingRepo{saveErr: errors.New("write failed")}
	svc := NewSettingsService(repo)

	cost := 75.0
	current, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{ShippingCost: &cost})
	require.ErrorIs(t, err, ErrSettingsSave)

	// คืนค่าปัจจุบัน (ยังไม่เปลี่ยน)
	assert.Equal(t, models.DefaultSettings().ShippingCost, current.ShippingCost)
}

func TestSettingsReset(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingsService(repo)

	cost := 75.0
	_, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{ShippingCost: &cost})
	require.NoError(t, err)

	settings, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestCalculateShippingCost(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{})
	ctx := context.Background()

	// defaults: threshold 500, cost 50
	tests := []struct {
		name     string
		total    float64
		expected float64
	}{
		{"below threshold pays shipping", 499.99, 50},
		{"exactly at threshold ships free", 500, 0},
		{"above threshold ships free", 650, 0},
		{"zero order pays shipping", 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.CalculateShippingCost(ctx, tt.total))
		})
	}
}

func TestCalculateTax(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{})

	// default rate 14%
	assert.InDelta(t, 14.0, svc.CalculateTax(context.Background(), 100), 0.0001)
	assert.InDelta(t, 0.0, svc.CalculateTax(context.Background(), 0), 0.0001)
}

func TestFormatPrice(t *testing.T) {
	svc := NewSettingsService(&fakeSettingRepo{})

	assert.Equal(t, "150.00 ج.م", svc.FormatPrice(context.Background(), 150))
	assert.Equal(t, "99.90 ج.م", svc.FormatPrice(context.Background(), 99.9))
}
