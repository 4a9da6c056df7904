package gateway

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

type UserPayload struct {
	Name      string      `json:"name,omitempty"`
	Email     string      `json:"email,omitempty"`
	Telephone string      `json:"telephone,omitempty"`
	Password  string      `json:"password,omitempty"`
	Role      models.Role `json:"role,omitempty"`
}

func (c *Client) Users(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	if err := c.get(ctx, "/users", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, token string, id uint) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, payload UserPayload) (*models.User, error) {
	var out models.User
	if err := c.post(ctx, "/users", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id uint, payload UserPayload) (*models.User, error) {
	var out models.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id uint) error {
	return c.del(ctx, fmt.Sprintf("/users/%d", id), token)
}

func (c *Client) Barbers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	if err := c.get(ctx, "/users/barbers", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, token string, id uint, role models.Role) (*models.User, error) {
	var out models.User
	body := map[string]models.Role{"role": role}
	if err := c.patch(ctx, fmt.Sprintf("/users/%d", id), token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
