package entities

import "time"

// FinanciamientoLote binds one lot to one financing plan and snapshots the
// resulting quote.
//
// The four monetary fields are computed once, at creation time, and never
// recomputed: a financiamiento is a point-in-time quote, so later changes to
// the plan or the lot must not alter it. There is no update operation.
//
// Invariants:
//   - (LoteID, PlanFinanciamientoID) is unique across all financiamientos.
//   - Both references must resolve at creation time and the plan must be active.
//   - CuotaInicial never exceeds the lot's cash price at creation time.
type FinanciamientoLote struct {
	ID                   string    `json:"id"`
	LoteID               string    `json:"lote_id"`
	PlanFinanciamientoID string    `json:"plan_financiamiento_id"`
	CuotaInicial         float64   `json:"cuota_inicial"`
	SaldoFinanciar       float64   `json:"saldo_financiar"`
	InteresTotal         float64   `json:"interes_total"`
	CuotaMensual         float64   `json:"cuota_mensual"`
	PrecioTotalCredito   float64   `json:"precio_total_credito"`
	CreatedAt            time.Time `json:"created_at"`
}
