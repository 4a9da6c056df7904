package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/audit"
	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/gateway"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
)

type BarberServiceHandler struct {
	api   *gateway.Client
	audit *audit.Dispatcher
	guard *sessionGuard
}

func NewBarberServiceHandler(
	api *gateway.Client,
	auditDispatcher *audit.Dispatcher,
	sessions *session.Store,
	cfg *config.Config,
) *BarberServiceHandler {
	return &BarberServiceHandler{
		api:   api,
		audit: auditDispatcher,
		guard: &sessionGuard{sessions: sessions, cfg: cfg},
	}
}

// --------- Requests ---------

type BarberServiceRequest struct {
	NameService       string  `json:"nameService" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required,min=0"`
	DurationInMinutes int     `json:"durationInMinutes" binding:"required,min=1"`
}

func (r BarberServiceRequest) payload() gateway.BarberServicePayload {
	return gateway.BarberServicePayload{
		NameService:       r.NameService,
		Description:       r.Description,
		Price:             r.Price,
		DurationInMinutes: r.DurationInMinutes,
	}
}

// --------- Handlers ---------

func (h *BarberServiceHandler) List(c *gin.Context) {
	list, err := h.api.BarberServices(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *BarberServiceHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	svc, err := h.api.GetBarberService(c.Request.Context(), tokenFrom(c), id)
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *BarberServiceHandler) Create(c *gin.Context) {
	var req BarberServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.api.CreateBarberService(c.Request.Context(), tokenFrom(c), req.payload())
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_service_created",
		Entity:   "barber_service",
		EntityID: created.ID,
		Role:     string(roleFrom(c)),
	})

	httpresp.Created(c, created)
}

func (h *BarberServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req BarberServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.api.UpdateBarberService(c.Request.Context(), tokenFrom(c), id, req.payload())
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_service_updated",
		Entity:   "barber_service",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	httpresp.OK(c, updated)
}

func (h *BarberServiceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.api.DeleteBarberService(c.Request.Context(), tokenFrom(c), id); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_service_deleted",
		Entity:   "barber_service",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
