package upstream

import (
	"context"
	"encoding/json"
	"errors"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
)

// ErrInvalidCredentials login ไม่ผ่าน (401/400 จาก /auth/login)
var ErrInvalidCredentials = errors.New("invalid credentials")

type authRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) repositories.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, username, password string) (*models.AdminUser, string, error) {
	raw, err := r.client.Post(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.StatusCode == 400 || se.StatusCode == 401) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	// รับทั้ง {admin, token} และ {user, token} และแบบห่อ data
	var resp struct {
		Token string          `json:"token"`
		Admin json.RawMessage `json:"admin"`
		User  json.RawMessage `json:"user"`
		Data  *struct {
			Token string          `json:"token"`
			Admin json.RawMessage `json:"admin"`
			User  json.RawMessage `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, "", &UnexpectedEnvelopeError{Endpoint: "/auth/login", Snippet: snippet(raw)}
	}

	token := resp.Token
	adminRaw := resp.Admin
	if len(adminRaw) == 0 {
		adminRaw = resp.User
	}
	if resp.Data != nil {
		if token == "" {
			token = resp.Data.Token
		}
		if len(adminRaw) == 0 {
			adminRaw = resp.Data.Admin
		}
		if len(adminRaw) == 0 {
			adminRaw = resp.Data.User
		}
	}

	if token == "" || len(adminRaw) == 0 {
		return nil, "", &UnexpectedEnvelopeError{Endpoint: "/auth/login", Snippet: snippet(raw)}
	}

	var wire wireUser
	if err := json.Unmarshal(adminRaw, &wire); err != nil {
		return nil, "", &UnexpectedEnvelopeError{Endpoint: "/auth/login", Snippet: snippet(adminRaw)}
	}

	admin := &models.AdminUser{
		ID:       firstNonEmpty(wire.MongoID, wire.ID),
		Username: wire.Username,
		Email:    wire.Email,
		Role:     wire.Role,
		Avatar:   wire.Avatar,
	}
	return admin, token, nil
}

func (r *authRepository) CreateAdmin(ctx context.Context, username, email, password string) error {
	_, err := r.client.Post(ctx, "/auth/create-admin", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	return err
}
