package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/audit"
	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/domain/openinghours"
	"github.com/BruksfildServices01/barber-app-web/internal/gateway"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
	"github.com/BruksfildServices01/barber-app-web/internal/httpresp"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
)

type OpeningHoursHandler struct {
	api   *gateway.Client
	audit *audit.Dispatcher
	guard *sessionGuard
}

func NewOpeningHoursHandler(
	api *gateway.Client,
	auditDispatcher *audit.Dispatcher,
	sessions *session.Store,
	cfg *config.Config,
) *OpeningHoursHandler {
	return &OpeningHoursHandler{
		api:   api,
		audit: auditDispatcher,
		guard: &sessionGuard{sessions: sessions, cfg: cfg},
	}
}

// ======================================================
// HORÁRIO SEMANAL
// ======================================================

// GetWeekly devolve o conjunto de trabalho reconciliado: sempre 7 linhas,
// segunda a domingo, com os dias que o backend não conhece fechados.
func (h *OpeningHoursHandler) GetWeekly(c *gin.Context) {
	rows, err := h.api.WeeklySchedule(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	httpresp.List(c, openinghours.Reconcile(rows))
}

// SaveWeekly grava o lote completo. Sem diferença contra o estado atual do
// backend, nada é enviado; depois de gravar, o retorno vem de uma releitura
// (o estado local nunca é assumido como verdade).
func (h *OpeningHoursHandler) SaveWeekly(c *gin.Context) {
	var rows []models.WeeklySchedule
	if err := c.ShouldBindJSON(&rows); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := openinghours.ValidateWeek(rows); err != nil {
		httperr.WriteError(c, err)
		return
	}

	current, err := h.api.WeeklySchedule(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	original := openinghours.Reconcile(current)
	if !openinghours.HasChanges(rows, original) {
		c.JSON(http.StatusOK, gin.H{"changed": false, "days": original})
		return
	}

	payload := openinghours.ForRecurringSave(rows)
	if err := h.api.SaveWeeklySchedule(c.Request.Context(), tokenFrom(c), payload); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action: "weekly_schedule_saved",
		Entity: "weekly_schedule",
		Role:   string(roleFrom(c)),
	})

	reloaded, err := h.api.WeeklySchedule(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changed": true, "days": openinghours.Reconcile(reloaded)})
}

// ======================================================
// EXCEÇÕES DE DATA
// ======================================================

func (h *OpeningHoursHandler) ListSpecificDates(c *gin.Context) {
	raw, err := h.api.SpecificDates(c.Request.Context(), tokenFrom(c))
	if err != nil {
		h.guard.fail(c, err)
		return
	}

	httpresp.List(c, openinghours.NormalizeOverrideList(raw))
}

func (h *OpeningHoursHandler) CreateSpecificDate(c *gin.Context) {
	var form openinghours.OverrideForm
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// validação local: sem rede quando o formulário está incompleto
	if err := form.Validate(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	if err := h.api.CreateSpecificDate(c.Request.Context(), tokenFrom(c), form.Payload()); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "specific_date_created",
		Entity:   "specific_date",
		Role:     string(roleFrom(c)),
		Metadata: gin.H{"specificDate": form.SpecificDate},
	})

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *OpeningHoursHandler) UpdateSpecificDate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var form openinghours.OverrideForm
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := form.Validate(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	if err := h.api.UpdateSpecificDate(c.Request.Context(), tokenFrom(c), id, form.Payload()); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "specific_date_updated",
		Entity:   "specific_date",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *OpeningHoursHandler) DeleteSpecificDate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.api.DeleteSpecificDate(c.Request.Context(), tokenFrom(c), id); err != nil {
		h.guard.fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "specific_date_deleted",
		Entity:   "specific_date",
		EntityID: id,
		Role:     string(roleFrom(c)),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
