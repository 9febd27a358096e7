package handlers

import (
	"log"
	"net/http"

	request "terranova_lotes/internal/adapter/http/dto/request"
	response "terranova_lotes/internal/adapter/http/dto/response"
	"terranova_lotes/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PlanFinanciamientoHandler handles HTTP requests for financing plans.

type PlanFinanciamientoHandler struct {
	usecase usecase.IPlanFinanciamientoUseCase
}

func NewPlanFinanciamientoHandler(uc usecase.IPlanFinanciamientoUseCase) *PlanFinanciamientoHandler {
	return &PlanFinanciamientoHandler{usecase: uc}
}

// ListPlanesFinanciamiento returns every plan.
func (h *PlanFinanciamientoHandler) ListPlanesFinanciamiento(c *gin.Context) {
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromPlanesFinanciamiento(all), nil))
}

// GetPlanFinanciamiento returns one plan by id.
func (h *PlanFinanciamientoHandler) GetPlanFinanciamiento(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("", response.FromPlanFinanciamiento(found), nil))
}

// CreatePlanFinanciamiento creates a financing plan.
func (h *PlanFinanciamientoHandler) CreatePlanFinanciamiento(c *gin.Context) {
	var payload request.CreatePlanFinanciamientoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[plan][handler] invalid payload err=%v", err)
		renderInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OK("Plan de financiamiento creado exitosamente", response.FromPlanFinanciamiento(res.Plan), res.AffectedViews))
}

// UpdatePlanFinanciamiento applies a partial update to a plan. Existing
// financiamientos keep their snapshot; only future quotes see the change.
func (h *PlanFinanciamientoHandler) UpdatePlanFinanciamiento(c *gin.Context) {
	var payload request.UpdatePlanFinanciamientoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[plan][handler] invalid payload id=%s err=%v", c.Param("id"), err)
		renderInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Plan de financiamiento actualizado exitosamente", response.FromPlanFinanciamiento(res.Plan), res.AffectedViews))
}

// DeletePlanFinanciamiento removes a plan with no financiamientos.
func (h *PlanFinanciamientoHandler) DeletePlanFinanciamiento(c *gin.Context) {
	res, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Plan de financiamiento eliminado exitosamente", response.FromPlanFinanciamiento(res.Plan), res.AffectedViews))
}
