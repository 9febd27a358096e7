package response

import (
	"terranova_lotes/internal/domain/entities"
	"time"
)

// FinanciamientoLoteResponse is the persisted quote snapshot. Lote and Plan
// are echoed on creation so clients can render the quote without extra
// round trips; both are omitted on plain reads.
type FinanciamientoLoteResponse struct {
	ID                   string                      `json:"id"`
	LoteID               string                      `json:"lote_id"`
	PlanFinanciamientoID string                      `json:"plan_financiamiento_id"`
	CuotaInicial         float64                     `json:"cuota_inicial"`
	SaldoFinanciar       float64                     `json:"saldo_financiar"`
	InteresTotal         float64                     `json:"interes_total"`
	CuotaMensual         float64                     `json:"cuota_mensual"`
	PrecioTotalCredito   float64                     `json:"precio_total_credito"`
	CreatedAt            time.Time                   `json:"created_at"`
	Lote                 *LoteResponse               `json:"lote,omitempty"`
	Plan                 *PlanFinanciamientoResponse `json:"plan_financiamiento,omitempty"`
}

func FromFinanciamientoLote(f entities.FinanciamientoLote) FinanciamientoLoteResponse {
	return FinanciamientoLoteResponse{
		ID:                   f.ID,
		LoteID:               f.LoteID,
		PlanFinanciamientoID: f.PlanFinanciamientoID,
		CuotaInicial:         f.CuotaInicial,
		SaldoFinanciar:       f.SaldoFinanciar,
		InteresTotal:         f.InteresTotal,
		CuotaMensual:         f.CuotaMensual,
		PrecioTotalCredito:   f.PrecioTotalCredito,
		CreatedAt:            f.CreatedAt,
	}
}

// FromFinanciamientoLoteDetalle attaches the lote and plan the quote was
// computed against.
func FromFinanciamientoLoteDetalle(f entities.FinanciamientoLote, l entities.Lote, p entities.PlanFinanciamiento) FinanciamientoLoteResponse {
	out := FromFinanciamientoLote(f)
	lote := FromLote(l)
	plan := FromPlanFinanciamiento(p)
	out.Lote = &lote
	out.Plan = &plan
	return out
}

func FromFinanciamientosLote(fs []entities.FinanciamientoLote) []FinanciamientoLoteResponse {
	out := make([]FinanciamientoLoteResponse, len(fs))
	for i, f := range fs {
		out[i] = FromFinanciamientoLote(f)
	}
	return out
}
