package handlers

import (
	"log"
	"net/http"

	request "terranova_lotes/internal/adapter/http/dto/request"
	response "terranova_lotes/internal/adapter/http/dto/response"
	"terranova_lotes/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LoteHandler handles HTTP requests for lotes.

type LoteHandler struct {
	usecase usecase.ILoteUseCase
}

func NewLoteHandler(uc usecase.ILoteUseCase) *LoteHandler {
	return &LoteHandler{usecase: uc}
}

// ListLotes returns every lote.
func (h *LoteHandler) ListLotes(c *gin.Context) {
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromLotes(all), nil))
}

// GetLote returns one lote by id.
func (h *LoteHandler) GetLote(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromLote(found), nil))
}

// CreateLote creates a lote; nombre and precio_contado come back computed.
func (h *LoteHandler) CreateLote(c *gin.Context) {
	var payload request.CreateLoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[lote][handler] invalid payload err=%v", err)
		renderInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OK("Lote creado exitosamente", response.FromLote(res.Lote), res.AffectedViews))
}

// UpdateLote applies a partial update to a lote.
func (h *LoteHandler) UpdateLote(c *gin.Context) {
	var payload request.UpdateLoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[lote][handler] invalid payload id=%s err=%v", c.Param("id"), err)
		renderInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Lote actualizado exitosamente", response.FromLote(res.Lote), res.AffectedViews))
}

// DeleteLote removes a lote and, through the repository, its financiamientos.
func (h *LoteHandler) DeleteLote(c *gin.Context) {
	res, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Lote eliminado exitosamente", response.FromLote(res.Lote), res.AffectedViews))
}
