package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/audit"
	"github.com/BruksfildServices01/barber-app-web/internal/config"
	domain "github.com/BruksfildServices01/barber-app-web/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-app-web/internal/gateway"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
)

// ======================================================
// HANDLER
// ======================================================

type SchedulingHandler struct {
	api   *gateway.Client
	audit *audit.Dispatcher
	guard *sessionGuard
}

func NewSchedulingHandler(
	api *gateway.Client,
	auditDispatcher *audit.Dispatcher,
	sessions *session.Store,
	cfg *config.Config,
) *SchedulingHandler {
	return &SchedulingHandler{
		api:   api,
		audit: auditDispatcher,
		guard: &sessionGuard{sessions: sessions, cfg: cfg},
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSchedulingRequest struct {
	BarberServiceIDs []uint `json:"barberServiceIds" binding:"required,min=1"`
	BarberID         uint   `json:"barberId" binding:"required"`
	DateTime         string `json:"dateTime" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type FinishRequest struct {
	PaymentMethod   models.PaymentMethod `json:"paymentMethod" binding:"required"`
	Observation     string               `json:"observation"`
	AdditionalValue float64              `json:"additionalValue"`
}

type AddServicesRequest struct {
	BarberServiceIDs []uint `json:"barberServiceIds" binding:"required,min=1"`
}

// ======================================================
// VIEWS
// ======================================================

// schedulingView anexa os valores derivados ao registro canônico. O
// totalValue do backend segue intacto dentro do próprio registro.
type schedulingView struct {
	models.Scheduling
	Summary domain.Summary `json:"summary"`
}

func toView(s models.Scheduling) schedulingView {
	return schedulingView{Scheduling: s, Summary: domain.Summarize(&s)}
}

func toViewList(list []models.Scheduling) []schedulingView {
	views := make([]schedulingView, 0, len(list))
	for _, s := range list {
		views = append(views, toView(s))
	}
	return views
}

// ======================================================
// LISTAGEM
// ======================================================

func (h *SchedulingHandler) List(c *gin.Context) {
	list, err := h.api.ListSchedulings(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.List(c, toViewList(list))
}

func (h *SchedulingHandler) ListMine(c *gin.Context) {
	list, err := h.api.ListSchedulingsByCustomer(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.List(c, toViewList(list))
}

func (h *SchedulingHandler) ListForBarber(c *gin.Context) {
	list, err := h.api.ListSchedulingsByBarber(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.List(c, toViewList(list))
}

func (h *SchedulingHandler) ListByDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	list, err := h.api.ListSchedulingsByDay(c.Request.Context(), tokenFrom(c), date)
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.List(c, toViewList(list))
}

func (h *SchedulingHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	s, err := h.api.GetScheduling(c.Request.Context(), tokenFrom(c), id)
	if err != nil {
		h.guard.fail(c, err)
		return
	}
	httpresp.OK(c, toView(*s))
}

// ======================================================
// MUTAÇÕES
// ======================================================

func (h *SchedulingHandler) Create(c *gin.Context) {
	var req CreateSchedulingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.api.CreateScheduling(c.Request.Context(), tokenFrom(c), gateway.CreateSchedulingPayload{
		BarberServiceID: req.BarberServiceIDs,
		BarberID:        req.BarberID,
		DateTime:        req.DateTime,
	})
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "scheduling_created",
		Entity:   "scheduling",
		EntityID: created.ID,
		Role:     string(roleFrom(c)),
	})

	httpresp.Created(c, toView(*created))
}

func (h *SchedulingHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.api.UpdateScheduling(c.Request.Context(), tokenFrom(c), id, body)
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "scheduling_updated",
		Entity:   "scheduling",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	httpresp.OK(c, toView(*updated))
}

func (h *SchedulingHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.api.DeleteScheduling(c.Request.Context(), tokenFrom(c), id); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "scheduling_deleted",
		Entity:   "scheduling",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SchedulingHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_reason", "Informe o motivo do cancelamento.")
		return
	}

	if err := h.api.CancelScheduling(c.Request.Context(), tokenFrom(c), id, req.Reason); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "scheduling_cancelled",
		Entity:   "scheduling",
		EntityID: id,
		Role:     string(roleFrom(c)),
		Metadata: gin.H{"reason": req.Reason},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SchedulingHandler) Finish(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req FinishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.PaymentMethod.Valid() {
		httperr.BadRequest(c, "invalid_payment_method", "Método de pagamento desconhecido.")
		return
	}

	if req.AdditionalValue < 0 {
		httperr.BadRequest(c, "invalid_additional_value", "O valor adicional não pode ser negativo.")
		return
	}

	err := h.api.FinishScheduling(c.Request.Context(), tokenFrom(c), id, gateway.FinalizeRequest{
		PaymentMethod:   req.PaymentMethod,
		Observation:     req.Observation,
		AdditionalValue: req.AdditionalValue,
	})
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "scheduling_completed",
		Entity:   "scheduling",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SchedulingHandler) AddServices(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AddServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe ao menos um serviço.")
		return
	}

	if err := h.api.AddServices(c.Request.Context(), tokenFrom(c), id, req.BarberServiceIDs); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "scheduling_services_added",
		Entity:   "scheduling",
		EntityID: id,
		Role:     string(roleFrom(c)),
		Metadata: gin.H{"barberServiceIds": req.BarberServiceIDs},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SchedulingHandler) AvailableTimes(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	barberID, ok := queryUint(c, "barberId")
	if !ok {
		return
	}

	serviceIDs, ok := queryUintList(c, "barberServiceIds")
	if !ok {
		return
	}

	times, err := h.api.AvailableTimes(c.Request.Context(), tokenFrom(c), date, serviceIDs, barberID)
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	httpresp.List(c, times)
}
