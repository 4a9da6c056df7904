package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mensagens genéricas usadas quando o backend não manda nada aproveitável.
const (
	GenericMessage = "Erro de comunicação com o servidor."
	UnknownMessage = "Erro desconhecido."
)

// Normalized é a forma única de erro que circula no app depois da borda do
// gateway: falha de transporte, erro estruturado do backend ou erro
// desconhecido, todos viram isto.
type Normalized struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e *Normalized) Error() string {
	return e.Message
}

// IsAuthError indica 401/403 do backend: o sinal para invalidar a sessão.
func (e *Normalized) IsAuthError() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// Transport embrulha uma falha de rede/transporte (sem resposta HTTP).
func Transport(err error) *Normalized {
	return &Normalized{
		Message: GenericMessage,
		Code:    "network_error",
		Details: err.Error(),
	}
}

// FromResponse monta o erro normalizado a partir de uma resposta de erro do
// backend, preferindo a mensagem humana do corpo (message, error ou detail)
// antes de cair na genérica.
func FromResponse(status int, body []byte) *Normalized {
	n := &Normalized{
		Message: GenericMessage,
		Status:  status,
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil && payload != nil {
		for _, key := range []string{"message", "error", "detail"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				n.Message = msg
				break
			}
		}
		if code, ok := payload["code"].(string); ok {
			n.Code = code
		}
		n.Details = payload
	} else if len(body) > 0 {
		n.Details = string(body)
	}

	if n.IsAuthError() && n.Code == "" {
		n.Code = "session_expired"
	}

	return n
}

// Normalize converte qualquer erro na forma única. Erros já normalizados
// passam direto; validação local vira 400; o resto vira desconhecido.
func Normalize(err error) *Normalized {
	if err == nil {
		return nil
	}

	var n *Normalized
	if errors.As(err, &n) {
		return n
	}

	var v ValidationError
	if errors.As(err, &v) {
		return &Normalized{
			Message: v.Message,
			Status:  http.StatusBadRequest,
			Code:    v.Code,
		}
	}

	return &Normalized{
		Message: UnknownMessage,
		Details: err.Error(),
	}
}

// ===============================
// Escrita de erros (gin)
// ===============================

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// WriteError responde com o erro normalizado, reaproveitando o status do
// backend quando houver; sem status conhecido, devolve 502.
func WriteError(c *gin.Context, err error) {
	n := Normalize(err)

	status := n.Status
	if status == 0 {
		status = http.StatusBadGateway
	}

	c.JSON(status, HTTPError{
		Code:    n.Code,
		Message: n.Message,
		Details: n.Details,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
