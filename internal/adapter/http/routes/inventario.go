package routes

import (
	"terranova_lotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUrbanizaciones  = "/urbanizaciones"
	PathLotes           = "/lotes"
	PathPlanes          = "/planes-financiamiento"
	PathFinanciamientos = "/financiamientos"
)

func addInventarioRoutes(
	rg *gin.RouterGroup,
	urbanizacionHandler *handlers.UrbanizacionHandler,
	loteHandler *handlers.LoteHandler,
	planHandler *handlers.PlanFinanciamientoHandler,
	financiamientoHandler *handlers.FinanciamientoLoteHandler,
) {
	urbanizaciones := rg.Group(PathUrbanizaciones)
	{
		urbanizaciones.GET("", urbanizacionHandler.ListUrbanizaciones)
		urbanizaciones.GET("/:id", urbanizacionHandler.GetUrbanizacion)
		urbanizaciones.POST("", urbanizacionHandler.CreateUrbanizacion)
		urbanizaciones.PATCH("/:id", urbanizacionHandler.UpdateUrbanizacion)
		urbanizaciones.DELETE("/:id", urbanizacionHandler.DeleteUrbanizacion)
	}

	lotes := rg.Group(PathLotes)
	{
		lotes.GET("", loteHandler.ListLotes)
		lotes.GET("/:id", loteHandler.GetLote)
		lotes.POST("", loteHandler.CreateLote)
		lotes.PATCH("/:id", loteHandler.UpdateLote)
		lotes.DELETE("/:id", loteHandler.DeleteLote)
	}

	planes := rg.Group(PathPlanes)
	{
		planes.GET("", planHandler.ListPlanesFinanciamiento)
		planes.GET("/:id", planHandler.GetPlanFinanciamiento)
		planes.POST("", planHandler.CreatePlanFinanciamiento)
		planes.PATCH("/:id", planHandler.UpdatePlanFinanciamiento)
		planes.DELETE("/:id", planHandler.DeletePlanFinanciamiento)
	}

	// Financiamientos are immutable quote snapshots: no PATCH.
	financiamientos := rg.Group(PathFinanciamientos)
	{
		financiamientos.GET("", financiamientoHandler.ListFinanciamientos)
		financiamientos.GET("/:id", financiamientoHandler.GetFinanciamiento)
		financiamientos.POST("", financiamientoHandler.CreateFinanciamiento)
		financiamientos.DELETE("/:id", financiamientoHandler.DeleteFinanciamiento)
	}
}
