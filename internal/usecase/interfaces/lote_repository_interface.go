package interfaces

import (
	"context"

	"terranova_lotes/internal/domain/entities"
)

// ILoteRepository abstracts persistence for Lote.
//
// FindByUbicacion resolves the (manzano, numero, urbanizacion) uniqueness
// triple; Delete must cascade to the financiamientos referencing the lot.
type ILoteRepository interface {
	Create(ctx context.Context, l entities.Lote) (entities.Lote, error)
	GetByID(ctx context.Context, id string) (entities.Lote, error)
	FindByUbicacion(ctx context.Context, urbanizacionID, manzano string, numero int) (entities.Lote, error)
	List(ctx context.Context) ([]entities.Lote, error)
	Update(ctx context.Context, l entities.Lote) (entities.Lote, error)
	Delete(ctx context.Context, id string) error
}
