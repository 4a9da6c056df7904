package gateway

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

type BarberServicePayload struct {
	NameService       string  `json:"nameService"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	DurationInMinutes int     `json:"durationInMinutes"`
}

func (c *Client) BarberServices(ctx context.Context, token string) ([]models.BarberService, error) {
	var out []models.BarberService
	if err := c.get(ctx, "/barber-service", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBarberService(ctx context.Context, token string, id uint) (*models.BarberService, error) {
	var out models.BarberService
	if err := c.get(ctx, fmt.Sprintf("/barber-service/%d", id), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBarberService(
	ctx context.Context,
	token string,
	payload BarberServicePayload,
) (*models.BarberService, error) {

	var out models.BarberService
	if err := c.post(ctx, "/barber-service", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBarberService(
	ctx context.Context,
	token string,
	id uint,
	payload BarberServicePayload,
) (*models.BarberService, error) {

	var out models.BarberService
	if err := c.put(ctx, fmt.Sprintf("/barber-service/%d", id), token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBarberService(ctx context.Context, token string, id uint) error {
	return c.del(ctx, fmt.Sprintf("/barber-service/%d", id), token)
}
