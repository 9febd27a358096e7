package entities

import "time"

// Urbanizacion is a real-estate development that owns zero or more lots.
//
// Invariants:
//   - Nombre is unique across all urbanizaciones.
//   - An urbanizacion with at least one lot cannot be deleted.
type Urbanizacion struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Ubicacion string    `json:"ubicacion,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
