package response

import (
	"terranova_lotes/internal/domain/entities"
	"time"
)

// LoteResponse exposes the lot including its derived fields; Nombre and
// PrecioContado are always the server-computed values.
type LoteResponse struct {
	ID             string    `json:"id"`
	Manzano        string    `json:"manzano"`
	Numero         int       `json:"numero"`
	Nombre         string    `json:"nombre"`
	Zona           string    `json:"zona,omitempty"`
	SuperficieM2   float64   `json:"superficie_m2"`
	PrecioM2       float64   `json:"precio_m2"`
	PrecioContado  float64   `json:"precio_contado"`
	Estado         string    `json:"estado"`
	FormaVenta     string    `json:"forma_venta,omitempty"`
	UrbanizacionID string    `json:"urbanizacion_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromLote(l entities.Lote) LoteResponse {
	return LoteResponse{
		ID:             l.ID,
		Manzano:        l.Manzano,
		Numero:         l.Numero,
		Nombre:         l.Nombre,
		Zona:           l.Zona,
		SuperficieM2:   l.SuperficieM2,
		PrecioM2:       l.PrecioM2,
		PrecioContado:  l.PrecioContado,
		Estado:         string(l.Estado),
		FormaVenta:     string(l.FormaVenta),
		UrbanizacionID: l.UrbanizacionID,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromLotes(ls []entities.Lote) []LoteResponse {
	out := make([]LoteResponse, len(ls))
	for i, l := range ls {
		out[i] = FromLote(l)
	}
	return out
}
