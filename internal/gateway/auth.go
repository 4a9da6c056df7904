package gateway

import (
	"context"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Telephone       string `json:"telephone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var out LoginResponse
	if err := c.post(ctx, "/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/register", "", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/auth/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/auth/logout", token, nil, nil)
}
