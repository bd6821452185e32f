package redis

import (
	"context"
	"encoding/json"
	"errors"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
)

// sessionRepository session ของ admin บน redis
// (แทน browser storage ของ dashboard เดิม — คีย์ชุดเดียวกัน)
type sessionRepository struct {
	client *Client
}

func NewSessionRepository(client *Client) repositories.SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) Token(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, KeyAuthToken)
	if errors.Is(err, Nil) {
		return "", nil
	}
	return token, err
}

func (r *sessionRepository) SaveToken(ctx context.Context, token string) error {
	return r.client.Set(ctx, KeyAuthToken, token, 0)
}

func (r *sessionRepository) Admin(ctx context.Context) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.client.GetJSON(ctx, KeyAdminUser, &admin)
	if errors.Is(err, Nil) {
		return nil, nil
	}
	if err != nil {
		// JSON เสีย = session ใช้ไม่ได้ ถือว่าไม่มี
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *sessionRepository) SaveAdmin(ctx context.Context, admin *models.AdminUser) error {
	return r.client.SetJSON(ctx, KeyAdminUser, admin, 0)
}

// ClearAuth ลบเฉพาะ token + admin
// rememberedUsername/rememberMe อยู่รอด logout (ตามพฤติกรรมเดิม)
func (r *sessionRepository) ClearAuth(ctx context.Context) error {
	return r.client.Del(ctx, KeyAuthToken, KeyAdminUser)
}

func (r *sessionRepository) RememberedUsername(ctx context.Context) (string, error) {
	username, err := r.client.Get(ctx, KeyRememberedUsername)
	if errors.Is(err, Nil) {
		return "", nil
	}
	return username, err
}

func (r *sessionRepository) SaveRememberedUsername(ctx context.Context, username string) error {
	return r.client.Set(ctx, KeyRememberedUsername, username, 0)
}

func (r *sessionRepository) ClearRememberedUsername(ctx context.Context) error {
	return r.client.Del(ctx, KeyRememberedUsername)
}

func (r *sessionRepository) RememberMe(ctx context.Context) (bool, error) {
	v, err := r.client.Get(ctx, KeyRememberMe)
	if errors.Is(err, Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (r *sessionRepository) SetRememberMe(ctx context.Context, remember bool) error {
	if !remember {
		return r.client.Del(ctx, KeyRememberMe)
	}
	return r.client.Set(ctx, KeyRememberMe, "true", 0)
}
