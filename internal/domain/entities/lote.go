package entities

import (
	"fmt"
	"time"
)

// EstadoLote is the commercial state of a lot. It is caller-assigned
// metadata: the service stores whatever state it is given and enforces no
// transition rules between the values.
type EstadoLote string

const (
	EstadoLoteDisponible EstadoLote = "DISPONIBLE"
	EstadoLoteEnPago     EstadoLote = "ENPAGO"
	EstadoLotePagado     EstadoLote = "PAGADO"
)

// ValidEstadoLote reports whether v is one of the closed EstadoLote values.
func ValidEstadoLote(v EstadoLote) bool {
	switch v {
	case EstadoLoteDisponible, EstadoLoteEnPago, EstadoLotePagado:
		return true
	}
	return false
}

// FormaVenta is the optional sale mode of a lot.
type FormaVenta string

const (
	FormaVentaContado FormaVenta = "CONTADO"
	FormaVentaCredito FormaVenta = "CREDITO"
)

// ValidFormaVenta reports whether v is one of the closed FormaVenta values.
// The empty string is valid: forma de venta is optional.
func ValidFormaVenta(v FormaVenta) bool {
	switch v {
	case "", FormaVentaContado, FormaVentaCredito:
		return true
	}
	return false
}

// Lote is a subdivided lot inside an urbanizacion.
//
// Derived fields, recomputed whenever their inputs change:
//   - Nombre = "{Manzano}-{Numero}"
//   - PrecioContado = SuperficieM2 * PrecioM2
//
// Invariants:
//   - (Manzano, Numero) is unique within the owning urbanizacion.
//   - UrbanizacionID must reference an existing urbanizacion.
type Lote struct {
	ID             string     `json:"id"`
	Manzano        string     `json:"manzano"`
	Numero         int        `json:"numero"`
	Nombre         string     `json:"nombre"`
	Zona           string     `json:"zona"`
	SuperficieM2   float64    `json:"superficie_m2"`
	PrecioM2       float64    `json:"precio_m2"`
	PrecioContado  float64    `json:"precio_contado"`
	Estado         EstadoLote `json:"estado"`
	FormaVenta     FormaVenta `json:"forma_venta,omitempty"`
	UrbanizacionID string     `json:"urbanizacion_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LoteNombre builds the derived display name of a lot.
func LoteNombre(manzano string, numero int) string {
	return fmt.Sprintf("%s-%d", manzano, numero)
}
