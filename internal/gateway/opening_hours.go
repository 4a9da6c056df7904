package gateway

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-app-web/internal/models"
)

func (c *Client) WeeklySchedule(ctx context.Context, token string) ([]models.WeeklySchedule, error) {
	var out []models.WeeklySchedule
	if err := c.get(ctx, "/opening-hours/weekly-schedule", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveWeeklySchedule envia o lote completo (as 7 linhas) em um único PUT.
// O corpo da resposta não interessa; quem chamou recarrega do backend.
func (c *Client) SaveWeeklySchedule(ctx context.Context, token string, rows []models.WeeklySchedule) error {
	return c.put(ctx, "/opening-hours/weekly-schedule", token, rows, nil)
}

// SpecificDates devolve as exceções cruas, sem tipar: o formato da data
// varia entre versões do backend e a normalização acontece no domínio.
func (c *Client) SpecificDates(ctx context.Context, token string) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.get(ctx, "/opening-hours/specific-date", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSpecificDate(ctx context.Context, token string, payload models.SpecificDate) error {
	return c.post(ctx, "/opening-hours/specific-date", token, payload, nil)
}

func (c *Client) UpdateSpecificDate(ctx context.Context, token string, id uint, payload models.SpecificDate) error {
	return c.put(ctx, fmt.Sprintf("/opening-hours/specific-date/%d", id), token, payload, nil)
}

func (c *Client) DeleteSpecificDate(ctx context.Context, token string, id uint) error {
	return c.del(ctx, fmt.Sprintf("/opening-hours/specific-date/%d", id), token)
}
