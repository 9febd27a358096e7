package response

import (
	"terranova_lotes/internal/domain/entities"
	"time"
)

type UrbanizacionResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Ubicacion string    `json:"ubicacion,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUrbanizacion(u entities.Urbanizacion) UrbanizacionResponse {
	return UrbanizacionResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Ubicacion: u.Ubicacion,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUrbanizaciones(us []entities.Urbanizacion) []UrbanizacionResponse {
	out := make([]UrbanizacionResponse, len(us))
	for i, u := range us {
		out[i] = FromUrbanizacion(u)
	}
	return out
}
