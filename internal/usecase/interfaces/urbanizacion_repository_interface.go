package interfaces

import (
	"context"

	"terranova_lotes/internal/domain/entities"
)

// IUrbanizacionRepository abstracts persistence for Urbanizacion.
//
// Lookups return a zero-ID entity when the record does not exist; only real
// failures are errors.
type IUrbanizacionRepository interface {
	Create(ctx context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error)
	GetByID(ctx context.Context, id string) (entities.Urbanizacion, error)
	GetByNombre(ctx context.Context, nombre string) (entities.Urbanizacion, error)
	List(ctx context.Context) ([]entities.Urbanizacion, error)
	Update(ctx context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error)
	Delete(ctx context.Context, id string) error
	CountLotes(ctx context.Context, urbanizacionID string) (int, error)
}
