package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

// --------- Requests ---------

type CreateSchedulingPayload struct {
	BarberServiceID []uint `json:"barberServiceId"`
	BarberID        uint   `json:"barberId"`
	DateTime        string `json:"dateTime"`
}

type FinalizeRequest struct {
	PaymentMethod   models.PaymentMethod `json:"paymentMethod"`
	Observation     string               `json:"observation,omitempty"`
	AdditionalValue float64              `json:"additionalValue"`
}

// --------- Operations ---------

func (c *Client) ListSchedulings(ctx context.Context, token string) ([]models.Scheduling, error) {
	var out []models.Scheduling
	if err := c.get(ctx, "/scheduling", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSchedulingsByCustomer(ctx context.Context, token string) ([]models.Scheduling, error) {
	var out []models.Scheduling
	if err := c.get(ctx, "/scheduling/per-customer", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSchedulingsByBarber(ctx context.Context, token string) ([]models.Scheduling, error) {
	var out []models.Scheduling
	if err := c.get(ctx, "/scheduling/per-barber", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSchedulingsByDay(ctx context.Context, token, date string) ([]models.Scheduling, error) {
	var out []models.Scheduling
	path := "/scheduling/per-day?date=" + url.QueryEscape(date)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetScheduling(ctx context.Context, token string, id uint) (*models.Scheduling, error) {
	var out models.Scheduling
	if err := c.get(ctx, fmt.Sprintf("/scheduling/%d", id), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateScheduling(
	ctx context.Context,
	token string,
	payload CreateSchedulingPayload,
) (*models.Scheduling, error) {

	var out models.Scheduling
	if err := c.post(ctx, "/scheduling", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateScheduling(
	ctx context.Context,
	token string,
	id uint,
	payload any,
) (*models.Scheduling, error) {

	var out models.Scheduling
	if err := c.put(ctx, fmt.Sprintf("/scheduling/%d", id), token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteScheduling(ctx context.Context, token string, id uint) error {
	return c.del(ctx, fmt.Sprintf("/scheduling/%d", id), token)
}

// CancelScheduling pede o cancelamento com motivo. A transição de estado é
// do backend; o app recarrega depois.
func (c *Client) CancelScheduling(ctx context.Context, token string, id uint, reason string) error {
	body := map[string]string{"reason": reason}
	return c.post(ctx, fmt.Sprintf("/scheduling/barber/%d", id), token, body, nil)
}

func (c *Client) FinishScheduling(
	ctx context.Context,
	token string,
	id uint,
	req FinalizeRequest,
) error {
	return c.put(ctx, fmt.Sprintf("/scheduling/barber/completed/%d", id), token, req, nil)
}

func (c *Client) AddServices(ctx context.Context, token string, id uint, serviceIDs []uint) error {
	body := map[string][]uint{"barberServiceIds": serviceIDs}
	return c.post(ctx, fmt.Sprintf("/scheduling/barber/add-service/%d", id), token, body, nil)
}

// AvailableTimes consulta os horários livres para a combinação de data,
// serviços e barbeiro usada no fluxo de reserva.
func (c *Client) AvailableTimes(
	ctx context.Context,
	token string,
	date string,
	serviceIDs []uint,
	barberID uint,
) ([]string, error) {

	values := url.Values{}
	values.Set("date", date)
	for _, id := range serviceIDs {
		values.Add("barberServiceIds", strconv.FormatUint(uint64(id), 10))
	}
	values.Set("barberId", strconv.FormatUint(uint64(barberID), 10))

	var out []string
	if err := c.get(ctx, "/scheduling/available-times?"+values.Encode(), token, &out); err != nil {
		return nil, err
	}
	return out, nil
}
