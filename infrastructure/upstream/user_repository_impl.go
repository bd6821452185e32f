package upstream

import (
	"context"
	"encoding/json"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
)

type userRepository struct {
	client *Client
}

func NewUserRepository(client *Client) repositories.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context) ([]models.StoreUser, error) {
	raw, err := r.client.Get(ctx, "/users", nil)
	if err != nil {
		return nil, err
	}

	env, err := DecodeList("/users", raw)
	if err != nil {
		return nil, err
	}
	var wires []wireUser
	if err := json.Unmarshal(env.Items, &wires); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: "/users", Snippet: snippet(env.Items)}
	}
	users := make([]models.StoreUser, 0, len(wires))
	for i := range wires {
		users = append(users, wires[i].toModel())
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.StoreUser, error) {
	raw, err := r.client.Get(ctx, "/users/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeUser("/users/"+id, raw)
}

func (r *userRepository) Create(ctx context.Context, user *models.StoreUser, password string) (*models.StoreUser, error) {
	payload := userPayload(user)
	payload["password"] = password
	raw, err := r.client.Post(ctx, "/users", payload)
	if err != nil {
		return nil, err
	}
	return decodeUser("/users", raw)
}

func (r *userRepository) Update(ctx context.Context, id string, user *models.StoreUser) (*models.StoreUser, error) {
	raw, err := r.client.Put(ctx, "/users/"+id, userPayload(user))
	if err != nil {
		return nil, err
	}
	return decodeUser("/users/"+id, raw)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, "/users/"+id)
	return err
}

func (r *userRepository) SetAvatar(ctx context.Context, id, avatarURL string) (*models.StoreUser, error) {
	raw, err := r.client.Put(ctx, "/users/"+id+"/avatar", map[string]string{"avatar": avatarURL})
	if err != nil {
		return nil, err
	}
	return decodeUser("/users/"+id+"/avatar", raw)
}

func decodeUser(endpoint string, raw []byte) (*models.StoreUser, error) {
	obj, err := DecodeObject(endpoint, raw)
	if err != nil {
		return nil, err
	}
	var wire wireUser
	if err := json.Unmarshal(obj, &wire); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(obj)}
	}
	user := wire.toModel()
	return &user, nil
}

func userPayload(u *models.StoreUser) map[string]any {
	return map[string]any{
		"username":  u.Username,
		"email":     u.Email,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"role":      u.Role,
		"isActive":  u.IsActive,
	}
}
