package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/gateway"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/middleware"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
	"github.com/BruksfildServices01/barber-app-web/internal/validators"
)

type AuthHandler struct {
	api      *gateway.Client
	sessions *session.Store
	cfg      *config.Config
	guard    *sessionGuard
}

func NewAuthHandler(api *gateway.Client, sessions *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		api:      api,
		sessions: sessions,
		cfg:      cfg,
		guard:    &sessionGuard{sessions: sessions, cfg: cfg},
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Telephone       string `json:"telephone"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	resp, err := h.api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	sess, err := h.sessions.Create(c.Request.Context(), resp.Token)
	if err != nil {
		writeSessionCreateError(c, err)
		return
	}

	middleware.SetSessionCookie(c, h.cfg, sess.ID)
	c.JSON(http.StatusOK, gin.H{"role": sess.Role})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Password != req.ConfirmPassword {
		httperr.BadRequest(c, "password_mismatch", "As senhas não conferem.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	resp, err := h.api.Register(c.Request.Context(), gateway.RegisterPayload{
		Name:            req.Name,
		Email:           email,
		Telephone:       req.Telephone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	sess, err := h.sessions.Create(c.Request.Context(), resp.Token)
	if err != nil {
		writeSessionCreateError(c, err)
		return
	}

	middleware.SetSessionCookie(c, h.cfg, sess.ID)
	c.JSON(http.StatusCreated, gin.H{"role": sess.Role})
}

// writeSessionCreateError distingue o token vencido (o backend entregou um
// token já morto) da falha de infraestrutura ao gravar a sessão.
func writeSessionCreateError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrTokenExpired) {
		httperr.Unauthorized(c, "session_expired", "A sessão recebida já está expirada.")
		return
	}
	httperr.Internal(c, "session_create_failed", "Não foi possível iniciar a sessão.")
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.api.Me(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// melhor esforço no backend; a sessão local cai de qualquer jeito
	_ = h.api.Logout(c.Request.Context(), tokenFrom(c))

	if v, ok := c.Get(middleware.ContextSessionID); ok {
		if id, ok := v.(string); ok && id != "" {
			_ = h.sessions.Destroy(c.Request.Context(), id)
		}
	}

	middleware.ClearSessionCookie(c, h.cfg)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
