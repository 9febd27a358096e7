package request

// CreateFinanciamientoLoteRequest binds a lot to a financing plan. The quote
// fields are never accepted from the client; the server computes them from
// the referenced records.
type CreateFinanciamientoLoteRequest struct {
	LoteID               string `json:"lote_id" binding:"required"`
	PlanFinanciamientoID string `json:"plan_financiamiento_id" binding:"required"`
}
