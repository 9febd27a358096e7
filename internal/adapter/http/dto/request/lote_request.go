package request

import (
	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase"
)

// CreateLoteRequest omits nombre and precio_contado on purpose: both are
// derived server-side and any client-sent value is ignored.
type CreateLoteRequest struct {
	Manzano        string  `json:"manzano" binding:"required,max=50"`
	Numero         int     `json:"numero" binding:"required"`
	Zona           string  `json:"zona" binding:"required,max=100"`
	SuperficieM2   float64 `json:"superficie_m2" binding:"required"`
	PrecioM2       float64 `json:"precio_m2" binding:"required"`
	Estado         string  `json:"estado"`
	FormaVenta     string  `json:"forma_venta"`
	UrbanizacionID string  `json:"urbanizacion_id" binding:"required"`
}

func (r CreateLoteRequest) ToInput() usecase.CreateLoteInput {
	return usecase.CreateLoteInput{
		Manzano:        r.Manzano,
		Numero:         r.Numero,
		Zona:           r.Zona,
		SuperficieM2:   r.SuperficieM2,
		PrecioM2:       r.PrecioM2,
		Estado:         entities.EstadoLote(r.Estado),
		FormaVenta:     entities.FormaVenta(r.FormaVenta),
		UrbanizacionID: r.UrbanizacionID,
	}
}

// UpdateLoteRequest is a partial patch: absent fields stay nil and keep
// their stored value.
type UpdateLoteRequest struct {
	Manzano        *string  `json:"manzano"`
	Numero         *int     `json:"numero"`
	Zona           *string  `json:"zona"`
	SuperficieM2   *float64 `json:"superficie_m2"`
	PrecioM2       *float64 `json:"precio_m2"`
	Estado         *string  `json:"estado"`
	FormaVenta     *string  `json:"forma_venta"`
	UrbanizacionID *string  `json:"urbanizacion_id"`
}

func (r UpdateLoteRequest) ToInput() usecase.UpdateLoteInput {
	in := usecase.UpdateLoteInput{
		Manzano:      r.Manzano,
		Numero:       r.Numero,
		Zona:         r.Zona,
		SuperficieM2: r.SuperficieM2,
		PrecioM2:     r.PrecioM2,
	}
	if r.Estado != nil {
		estado := entities.EstadoLote(*r.Estado)
		in.Estado = &estado
	}
	if r.FormaVenta != nil {
		formaVenta := entities.FormaVenta(*r.FormaVenta)
		in.FormaVenta = &formaVenta
	}
	in.UrbanizacionID = r.UrbanizacionID
	return in
}
