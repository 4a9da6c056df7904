package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/middleware"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
)

func tokenFrom(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextToken)
	token, _ := v.(string)
	return token
}

func roleFrom(c *gin.Context) models.Role {
	v, _ := c.Get(middleware.ContextUserRole)
	role, _ := v.(models.Role)
	return role
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_query_param", "Parâmetro inválido: "+name)
		return 0, false
	}
	return uint(v), true
}

func queryUintList(c *gin.Context, name string) ([]uint, bool) {
	raw := c.QueryArray(name)
	if len(raw) == 0 {
		httperr.BadRequest(c, "invalid_query_param", "Parâmetro obrigatório: "+name)
		return nil, false
	}

	out := make([]uint, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_query_param", "Parâmetro inválido: "+name)
			return nil, false
		}
		out = append(out, uint(v))
	}
	return out, true
}

// sessionGuard cuida do sinal de invalidação: um 401/403 vindo do backend
// derruba a sessão local antes do erro subir para o navegador.
type sessionGuard struct {
	sessions *session.Store
	cfg      *config.Config
}

func (g *sessionGuard) fail(c *gin.Context, err error) {
	n := httperr.Normalize(err)

	if n.IsAuthError() {
		if v, ok := c.Get(middleware.ContextSessionID); ok && g.sessions != nil {
			if id, ok := v.(string); ok && id != "" {
				_ = g.sessions.Destroy(c.Request.Context(), id)
			}
		}
		middleware.ClearSessionCookie(c, g.cfg)
	}

	httperr.WriteError(c, n)
}
