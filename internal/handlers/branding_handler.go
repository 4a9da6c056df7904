package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-app-web/internal/branding"
	"github.com/BruksfildServices01/barber-app-web/internal/httperr"
)

type BrandingHandler struct {
	store *branding.Store
}

func NewBrandingHandler(store *branding.Store) *BrandingHandler {
	return &BrandingHandler{store: store}
}

type BrandingRequest struct {
	Name  string `json:"name" binding:"required"`
	About string `json:"about"`
}

func (h *BrandingHandler) Get(c *gin.Context) {
	b, err := h.store.Get(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "branding_unavailable", "Não foi possível carregar a identidade da barbearia.")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BrandingHandler) Update(c *gin.Context) {
	var req BrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b := branding.Branding{Name: req.Name, About: req.About}
	if err := h.store.Update(c.Request.Context(), b); err != nil {
		httperr.Internal(c, "branding_save_failed", "Não foi possível salvar a identidade da barbearia.")
		return
	}

	c.JSON(http.StatusOK, b)
}
