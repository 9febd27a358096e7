package handlers

import (
	"log"
	"net/http"

	request "terranova_lotes/internal/adapter/http/dto/request"
	response "terranova_lotes/internal/adapter/http/dto/response"
	"terranova_lotes/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FinanciamientoLoteHandler handles HTTP requests for lot financing
// bindings. There is no update endpoint: a financiamiento is an immutable
// quote snapshot.

type FinanciamientoLoteHandler struct {
	usecase usecase.IFinanciamientoLoteUseCase
}

func NewFinanciamientoLoteHandler(uc usecase.IFinanciamientoLoteUseCase) *FinanciamientoLoteHandler {
	return &FinanciamientoLoteHandler{usecase: uc}
}

// ListFinanciamientos returns every financiamiento.
func (h *FinanciamientoLoteHandler) ListFinanciamientos(c *gin.Context) {
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromFinanciamientosLote(all), nil))
}

// GetFinanciamiento returns one financiamiento by id.
func (h *FinanciamientoLoteHandler) GetFinanciamiento(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromFinanciamientoLote(found), nil))
}

// CreateFinanciamiento binds a lot to a plan and returns the computed quote.
func (h *FinanciamientoLoteHandler) CreateFinanciamiento(c *gin.Context) {
	var payload request.CreateFinanciamientoLoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[financiamiento][handler] invalid payload err=%v", err)
		renderInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), payload.LoteID, payload.PlanFinanciamientoID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OK(
		"Financiamiento creado exitosamente",
		response.FromFinanciamientoLoteDetalle(res.Financiamiento, res.Lote, res.Plan),
		res.AffectedViews,
	))
}

// DeleteFinanciamiento unbinds a lot from a plan.
func (h *FinanciamientoLoteHandler) DeleteFinanciamiento(c *gin.Context) {
	res, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Financiamiento eliminado exitosamente", response.FromFinanciamientoLote(res.Financiamiento), res.AffectedViews))
}
