package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
)

// ======================================================
// GATEWAY
// ======================================================
//
// Client é a porta única de saída para o backend de agendamento: funções
// tipadas por operação, bearer token por chamada e normalização de erro na
// borda. Nada aqui faz retry; falha de rede é terminal por ação.

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	token string,
	body any,
	out any,
) error {

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return httperr.Transport(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return httperr.Transport(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return httperr.Transport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return httperr.Transport(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return httperr.FromResponse(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &httperr.Normalized{
			Message: httperr.GenericMessage,
			Code:    "invalid_response",
			Details: err.Error(),
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) patch(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, token, body, out)
}

func (c *Client) del(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
