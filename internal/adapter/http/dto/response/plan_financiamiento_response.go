package response

import (
	"terranova_lotes/internal/domain/entities"
	"time"
)

type PlanFinanciamientoResponse struct {
	ID                string    `json:"id"`
	Nombre            string    `json:"nombre"`
	PorcentajeAnual   float64   `json:"porcentaje_anual"`
	CantidadCuotas    int       `json:"cantidad_cuotas"`
	TipoCuotaInicial  string    `json:"tipo_cuota_inicial"`
	ValorCuotaInicial float64   `json:"valor_cuota_inicial"`
	Activo            bool      `json:"activo"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPlanFinanciamiento(p entities.PlanFinanciamiento) PlanFinanciamientoResponse {
	return PlanFinanciamientoResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		PorcentajeAnual:   p.PorcentajeAnual,
		CantidadCuotas:    p.CantidadCuotas,
		TipoCuotaInicial:  string(p.TipoCuotaInicial),
		ValorCuotaInicial: p.ValorCuotaInicial,
		Activo:            p.Activo,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromPlanesFinanciamiento(ps []entities.PlanFinanciamiento) []PlanFinanciamientoResponse {
	out := make([]PlanFinanciamientoResponse, len(ps))
	for i, p := range ps {
		out[i] = FromPlanFinanciamiento(p)
	}
	return out
}
