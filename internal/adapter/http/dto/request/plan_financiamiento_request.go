package request

import (
	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase"
)

type CreatePlanFinanciamientoRequest struct {
	Nombre            string  `json:"nombre" binding:"required"`
	PorcentajeAnual   float64 `json:"porcentaje_anual"`
	CantidadCuotas    int     `json:"cantidad_cuotas" binding:"required"`
	TipoCuotaInicial  string  `json:"tipo_cuota_inicial" binding:"required"`
	ValorCuotaInicial float64 `json:"valor_cuota_inicial"`
	Activo            *bool   `json:"activo"`
}

func (r CreatePlanFinanciamientoRequest) ToInput() usecase.CreatePlanFinanciamientoInput {
	return usecase.CreatePlanFinanciamientoInput{
		Nombre:            r.Nombre,
		PorcentajeAnual:   r.PorcentajeAnual,
		CantidadCuotas:    r.CantidadCuotas,
		TipoCuotaInicial:  entities.TipoCuotaInicial(r.TipoCuotaInicial),
		ValorCuotaInicial: r.ValorCuotaInicial,
		Activo:            r.Activo,
	}
}

// UpdatePlanFinanciamientoRequest is a partial patch: absent fields stay nil
// and keep their stored value.
type UpdatePlanFinanciamientoRequest struct {
	Nombre            *string  `json:"nombre"`
	PorcentajeAnual   *float64 `json:"porcentaje_anual"`
	CantidadCuotas    *int     `json:"cantidad_cuotas"`
	TipoCuotaInicial  *string  `json:"tipo_cuota_inicial"`
	ValorCuotaInicial *float64 `json:"valor_cuota_inicial"`
	Activo            *bool    `json:"activo"`
}

func (r UpdatePlanFinanciamientoRequest) ToInput() usecase.UpdatePlanFinanciamientoInput {
	in := usecase.UpdatePlanFinanciamientoInput{
		Nombre:            r.Nombre,
		PorcentajeAnual:   r.PorcentajeAnual,
		CantidadCuotas:    r.CantidadCuotas,
		ValorCuotaInicial: r.ValorCuotaInicial,
		Activo:            r.Activo,
	}
	if r.TipoCuotaInicial != nil {
		tipo := entities.TipoCuotaInicial(*r.TipoCuotaInicial)
		in.TipoCuotaInicial = &tipo
	}
	return in
}
