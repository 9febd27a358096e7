package interfaces

import (
	"context"

	"terranova_lotes/internal/domain/entities"
)

// IFinanciamientoLoteRepository abstracts persistence for FinanciamientoLote.
// There is no Update: a financiamiento is an immutable quote snapshot.
type IFinanciamientoLoteRepository interface {
	Create(ctx context.Context, f entities.FinanciamientoLote) (entities.FinanciamientoLote, error)
	GetByID(ctx context.Context, id string) (entities.FinanciamientoLote, error)
	GetByPair(ctx context.Context, loteID, planFinanciamientoID string) (entities.FinanciamientoLote, error)
	List(ctx context.Context) ([]entities.FinanciamientoLote, error)
	Delete(ctx context.Context, id string) error
}
