package entities

import "time"

// TipoCuotaInicial selects how a plan's down payment is derived from a lot's
// cash price.
type TipoCuotaInicial string

const (
	// TipoCuotaInicialPorcentaje reads ValorCuotaInicial as a percentage of
	// the lot's cash price; the value must stay within [0,100].
	TipoCuotaInicialPorcentaje TipoCuotaInicial = "PORCENTAJE"
	// TipoCuotaInicialMontoFijo reads ValorCuotaInicial as an absolute amount.
	TipoCuotaInicialMontoFijo TipoCuotaInicial = "MONTO_FIJO"
)

// ValidTipoCuotaInicial reports whether v is one of the closed values.
func ValidTipoCuotaInicial(v TipoCuotaInicial) bool {
	switch v {
	case TipoCuotaInicialPorcentaje, TipoCuotaInicialMontoFijo:
		return true
	}
	return false
}

// PlanFinanciamiento is a reusable financing plan template.
//
// Invariants:
//   - Nombre is unique across all plans.
//   - A plan referenced by at least one financiamiento cannot be deleted.
//   - Only active plans can be bound to a lot.
type PlanFinanciamiento struct {
	ID                string           `json:"id"`
	Nombre            string           `json:"nombre"`
	PorcentajeAnual   float64          `json:"porcentaje_anual"`
	CantidadCuotas    int              `json:"cantidad_cuotas"`
	TipoCuotaInicial  TipoCuotaInicial `json:"tipo_cuota_inicial"`
	ValorCuotaInicial float64          `json:"valor_cuota_inicial"`
	Activo            bool             `json:"activo"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
