package handlers

import (
	"log"
	"net/http"

	request "terranova_lotes/internal/adapter/http/dto/request"
	response "terranova_lotes/internal/adapter/http/dto/response"
	"terranova_lotes/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UrbanizacionHandler handles HTTP requests for urbanizaciones.

type UrbanizacionHandler struct {
	usecase usecase.IUrbanizacionUseCase
}

func NewUrbanizacionHandler(uc usecase.IUrbanizacionUseCase) *UrbanizacionHandler {
	return &UrbanizacionHandler{usecase: uc}
}

// ListUrbanizaciones returns every urbanizacion.
func (h *UrbanizacionHandler) ListUrbanizaciones(c *gin.Context) {
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromUrbanizaciones(all), nil))
}

// GetUrbanizacion returns one urbanizacion by id.
func (h *UrbanizacionHandler) GetUrbanizacion(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromUrbanizacion(found), nil))
}

// CreateUrbanizacion creates a new urbanizacion.
func (h *UrbanizacionHandler) CreateUrbanizacion(c *gin.Context) {
	var payload request.CreateUrbanizacionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[urbanizacion][handler] invalid payload err=%v", err)
		renderInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OK("Urbanización creada exitosamente", response.FromUrbanizacion(res.Urbanizacion), res.AffectedViews))
}

// UpdateUrbanizacion applies a partial update to an urbanizacion.
func (h *UrbanizacionHandler) UpdateUrbanizacion(c *gin.Context) {
	var payload request.UpdateUrbanizacionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[urbanizacion][handler] invalid payload id=%s err=%v", c.Param("id"), err)
		renderInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Urbanización actualizada exitosamente", response.FromUrbanizacion(res.Urbanizacion), res.AffectedViews))
}

// DeleteUrbanizacion removes an urbanizacion without lots.
func (h *UrbanizacionHandler) DeleteUrbanizacion(c *gin.Context) {
	res, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Urbanización eliminada exitosamente", response.FromUrbanizacion(res.Urbanizacion), res.AffectedViews))
}
