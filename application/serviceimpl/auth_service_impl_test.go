package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/utils"
)

const testJWTSecret = "test-secret"

type fakeAuthRepo struct {
	admin    *models.AdminUser
	token    string
	loginErr error
}

func (f *fakeAuthRepo) Login(ctx context.Context, username, password string) (*models.AdminUser, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.admin, f.token, nil
}

func (f *fakeAuthRepo) CreateAdmin(ctx context.Context, username, email, password string) error {
	return nil
}

// fakeSessionRepo เก็บ state ใน memory แบบเดียวกับ redis store
type fakeSessionRepo struct {
	token      string
	admin      *models.AdminUser
	remembered string
	rememberMe bool
	saveErr    error
}

func (f *fakeSessionRepo) Token(ctx context.Context) (string, error) { return f.token, nil }

func (f *fakeSessionRepo) SaveToken(ctx context.Context, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}

func (f *fakeSessionRepo) Admin(ctx context.Context) (*models.AdminUser, error) { return f.admin, nil }

func (f *fakeSessionRepo) SaveAdmin(ctx context.Context, admin *models.AdminUser) error {
	f.admin = admin
	return nil
}

func (f *fakeSessionRepo) ClearAuth(ctx context.Context) error {
	f.token = ""
	f.admin = nil
	return nil
}

func (f *fakeSessionRepo) RememberedUsername(ctx context.Context) (string, error) {
	return f.remembered, nil
}

func (f *fakeSessionRepo) SaveRememberedUsername(ctx context.Context, username string) error {
	f.remembered = username
	return nil
}

func (f *fakeSessionRepo) ClearRememberedUsername(ctx context.Context) error {
	f.remembered = ""
	return nil
}

func (f *fakeSessionRepo) RememberMe(ctx context.Context) (bool, error) { return f.rememberMe, nil }

func (f *fakeSessionRepo) SetRememberMe(ctx context.Context, remember bool) error {
	f.rememberMe = remember
	return nil
}

func testAdmin() *models.AdminUser {
	return &models.AdminUser{ID: "adm-1", Username: "fateh", Email: "admin@elfateh.com", Role: "admin"}
}

func TestLoginStoresSessionAndIssuesGatewayToken(t *testing.T) {
	session := &fakeSessionRepo{}
	svc := NewAuthService(&fakeAuthRepo{admin: testAdmin(), token: "upstream-tok"}, session, testJWTSecret)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "fateh", Password: "pw"})
	require.NoError(t, err)

	// upstream token ถูกเก็บไว้ใช้กับ request ถัดไป
	assert.Equal(t, "upstream-tok", session.token)
	require.NotNil(t, session.admin)
	assert.Equal(t, "fateh", session.admin.Username)

	// token ที่คืนให้ dashboard เป็นของ gateway เอง
	assert.NotEqual(t, "upstream-tok", resp.Token)
	user, err := utils.ValidateToken(resp.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "adm-1", user.ID)
	assert.Equal(t, "admin", user.Role)
}

func TestLoginRememberMe(t *testing.T) {
	session := &fakeSessionRepo{remembered: "old-name"}
	svc := NewAuthService(&fakeAuthRepo{admin: testAdmin(), token: "tok"}, session, testJWTSecret)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "fateh", Password: "pw", RememberMe: true})
	require.NoError(t, err)
	assert.Equal(t, "fateh", session.remembered)
	assert.True(t, session.rememberMe)

	// login ครั้งถัดไปไม่ติ๊ก remember — ชื่อที่จำไว้ถูกล้าง
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "fateh", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, session.remembered)
	assert.False(t, session.rememberMe)
}

func TestLoginInvalidCredentials(t *testing.T) {
	session := &fakeSessionRepo{}
	svc := NewAuthService(&fakeAuthRepo{loginErr: upstream.ErrInvalidCredentials}, session, testJWTSecret)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "fateh", Password: "wrong"})
	require.ErrorIs(t, err, ErrLoginFailed)
	assert.Empty(t, session.token)
}

func TestLoginSessionPersistFailureFailsLogin(t *testing.T) {
	session := &fakeSessionRepo{saveErr: errors.New("store down")}
	svc := NewAuthService(&fakeAuthRepo{admin: testAdmin(), token: "tok"}, session, testJWTSecret)

	// เก็บ token ไม่ได้ = request ถัดไปไม่มี token ให้ใช้ ต้อง fail
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "fateh", Password: "pw"})
	require.Error(t, err)
}

func TestLogoutPreservesRememberedUsername(t *testing.T) {
	session := &fakeSessionRepo{token: "tok", admin: testAdmin(), remembered: "fateh"}
	svc := NewAuthService(&fakeAuthRepo{}, session, testJWTSecret)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, session.token)
	assert.Nil(t, session.admin)
	assert.Equal(t, "fateh", session.remembered)
	assert.Equal(t, "fateh", svc.RememberedUsername(context.Background()))
}

func TestIsAuthenticatedRequiresBoth(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		admin    *models.AdminUser
		expected bool
	}{
		{"both present", "tok", testAdmin(), true},
		{"token only", "tok", nil, false},
		{"admin only", "", testAdmin(), false},
		{"neither", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeSessionRepo{token: tt.token, admin: tt.admin}
			svc := NewAuthService(&fakeAuthRepo{}, session, testJWTSecret)
			assert.Equal(t, tt.expected, svc.IsAuthenticated(context.Background()))
		})
	}
}
