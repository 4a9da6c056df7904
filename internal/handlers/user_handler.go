package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/audit"
	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/gateway"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
)

type UserHandler struct {
	api   *gateway.Client
	audit *audit.Dispatcher
	guard *sessionGuard
}

func NewUserHandler(
	api *gateway.Client,
	auditDispatcher *audit.Dispatcher,
	sessions *session.Store,
	cfg *config.Config,
) *UserHandler {
	return &UserHandler{
		api:   api,
		audit: auditDispatcher,
		guard: &sessionGuard{sessions: sessions, cfg: cfg},
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name      string      `json:"name" binding:"required"`
	Email     string      `json:"email" binding:"required,email"`
	Telephone string      `json:"telephone"`
	Password  string      `json:"password" binding:"required,min=6"`
	Role      models.Role `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.api.Users(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.api.GetUser(c.Request.Context(), tokenFrom(c), id)
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.Role.Valid() {
		httperr.BadRequest(c, "invalid_role", "Papel de usuário desconhecido.")
		return
	}

	created, err := h.api.CreateUser(c.Request.Context(), tokenFrom(c), gateway.UserPayload{
		Name:      req.Name,
		Email:     req.Email,
		Telephone: req.Telephone,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: created.ID,
		Role:     string(roleFrom(c)),
	})

	httpresp.Created(c, created)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.api.UpdateUser(c.Request.Context(), tokenFrom(c), id, gateway.UserPayload{
		Name:      req.Name,
		Email:     req.Email,
		Telephone: req.Telephone,
	})
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_updated",
		Entity:   "user",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	httpresp.OK(c, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.api.DeleteUser(c.Request.Context(), tokenFrom(c), id); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *UserHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.api.Barbers(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.List(c, barbers)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Role.Valid() {
		httperr.BadRequest(c, "invalid_role", "Papel de usuário desconhecido.")
		return
	}

	updated, err := h.api.UpdateUserRole(c.Request.Context(), tokenFrom(c), id, req.Role)
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: id,
		Role:     string(roleFrom(c)),
		Metadata: gin.H{"role": req.Role},
	})

	httpresp.OK(c, updated)
}
