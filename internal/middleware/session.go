package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
)

const (
	ContextSessionID = "sessionID"
	ContextToken     = "apiToken"
	ContextUserRole  = "userRole"
)

// SessionMiddleware resolve a sessão do cookie e deixa o token bearer do
// backend no contexto. Um Authorization: Bearer direto também é aceito
// (clientes de API sem cookie).
func SessionMiddleware(store *session.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {

		if token, ok := bearerToken(c); ok {
			c.Set(ContextToken, token)
			c.Set(ContextUserRole, models.Role(""))
			c.Next()
			return
		}

		id, err := c.Cookie(cfg.SessionCookie)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if errors.Is(err, session.ErrNotFound) {
			ClearSessionCookie(c, cfg)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session_expired"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_store_unavailable"})
			return
		}

		c.Set(ContextSessionID, sess.ID)
		c.Set(ContextToken, sess.Token)
		c.Set(ContextUserRole, sess.Role)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// RequireRole barra a rota para quem não tem um dos papéis exigidos.
// Sessões sem papel conhecido (token opaco) passam e deixam o backend
// decidir.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get(ContextUserRole)
		role, _ := roleVal.(models.Role)

		if role == "" {
			c.Next()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

func SetSessionCookie(c *gin.Context, cfg *config.Config, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.SessionCookie,
		sessionID,
		int(cfg.SessionTTL.Seconds()),
		"/",
		"",
		cfg.CookieSecure,
		true,
	)
}

func ClearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.SessionCookie, "", -1, "/", "", cfg.CookieSecure, true)
}
