package interfaces

import (
	"context"

	"terranova_lotes/internal/domain/entities"
)

// IPlanFinanciamientoRepository abstracts persistence for PlanFinanciamiento.
type IPlanFinanciamientoRepository interface {
	Create(ctx context.Context, p entities.PlanFinanciamiento) (entities.PlanFinanciamiento, error)
	GetByID(ctx context.Context, id string) (entities.PlanFinanciamiento, error)
	GetByNombre(ctx context.Context, nombre string) (entities.PlanFinanciamiento, error)
	List(ctx context.Context) ([]entities.PlanFinanciamiento, error)
	Update(ctx context.Context, p entities.PlanFinanciamiento) (entities.PlanFinanciamiento, error)
	Delete(ctx context.Context, id string) error
	CountFinanciamientos(ctx context.Context, planID string) (int, error)
}
