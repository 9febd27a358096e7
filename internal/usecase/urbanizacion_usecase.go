package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/rules"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase/interfaces"
	"terranova_lotes/pkg"

	"github.com/google/uuid"
)

// CreateUrbanizacionInput carries the shape-validated fields for a new
// urbanizacion.
type CreateUrbanizacionInput struct {
	Nombre    string
	Ubicacion string
}

// UpdateUrbanizacionInput is a partial patch; nil fields keep their current
// value.
type UpdateUrbanizacionInput struct {
	Nombre    *string
	Ubicacion *string
}

// UrbanizacionResult is the success outcome of an urbanizacion mutation.
type UrbanizacionResult struct {
	Urbanizacion  entities.Urbanizacion
	AffectedViews []views.View
}

// IUrbanizacionUseCase manages urbanizacion records.
type IUrbanizacionUseCase interface {
	Create(ctx context.Context, in CreateUrbanizacionInput) (UrbanizacionResult, error)
	Update(ctx context.Context, id string, in UpdateUrbanizacionInput) (UrbanizacionResult, error)
	Delete(ctx context.Context, id string) (UrbanizacionResult, error)
	GetByID(ctx context.Context, id string) (entities.Urbanizacion, error)
	List(ctx context.Context) ([]entities.Urbanizacion, error)
}

type UrbanizacionUseCase struct {
	repo interfaces.IUrbanizacionRepository
}

var _ IUrbanizacionUseCase = (*UrbanizacionUseCase)(nil)

func NewUrbanizacionUseCase(repo interfaces.IUrbanizacionRepository) *UrbanizacionUseCase {
	return &UrbanizacionUseCase{repo: repo}
}

func (u *UrbanizacionUseCase) Create(ctx context.Context, in CreateUrbanizacionInput) (UrbanizacionResult, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return UrbanizacionResult{}, pkg.NewInvalidArgument("El nombre es requerido").
			WithField("nombre", "El nombre es requerido")
	}

	existente, err := u.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return UrbanizacionResult{}, pkg.NewInternal(err)
	}
	if existente.ID != "" {
		return UrbanizacionResult{}, pkg.NewConflict(fmt.Sprintf("Ya existe una urbanización con el nombre %q", nombre)).
			WithField("nombre", "Este nombre ya está en uso")
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.Urbanizacion{
		ID:        uuid.NewString(),
		Nombre:    nombre,
		Ubicacion: strings.TrimSpace(in.Ubicacion),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			// Lost a race against a concurrent create with the same name.
			return UrbanizacionResult{}, pkg.NewConflict("Ya existe una urbanización con ese nombre").
				WithField("nombre", "Este nombre ya está en uso")
		}
		log.Printf("[urbanizacion][usecase] create failed nombre=%q err=%v", nombre, err)
		return UrbanizacionResult{}, pkg.NewInternal(err)
	}

	log.Printf("[urbanizacion][usecase] created id=%s nombre=%q", created.ID, created.Nombre)
	return UrbanizacionResult{
		Urbanizacion:  created,
		AffectedViews: []views.View{views.UrbanizacionList},
	}, nil
}

func (u *UrbanizacionUseCase) Update(ctx context.Context, id string, in UpdateUrbanizacionInput) (UrbanizacionResult, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return UrbanizacionResult{}, pkg.NewInternal(err)
	}
	if current.ID == "" {
		return UrbanizacionResult{}, pkg.NewNotFound("Urbanización no encontrada").
			WithField("id", "Urbanización especificada no existe")
	}

	merged := current
	if in.Nombre != nil {
		merged.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Ubicacion != nil {
		merged.Ubicacion = strings.TrimSpace(*in.Ubicacion)
	}

	if merged.Nombre != current.Nombre {
		existente, err := u.repo.GetByNombre(ctx, merged.Nombre)
		if err != nil {
			return UrbanizacionResult{}, pkg.NewInternal(err)
		}
		if existente.ID != "" && existente.ID != id {
			return UrbanizacionResult{}, pkg.NewConflict(fmt.Sprintf("Ya existe una urbanización con el nombre %q", merged.Nombre)).
				WithField("nombre", "Este nombre ya está en uso")
		}
	}

	merged.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, merged)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return UrbanizacionResult{}, pkg.NewConflict("Ya existe una urbanización con ese nombre").
				WithField("nombre", "Este nombre ya está en uso")
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			// Deleted between the lookup and the statement.
			return UrbanizacionResult{}, pkg.NewNotFound("Urbanización no encontrada")
		}
		log.Printf("[urbanizacion][usecase] update failed id=%s err=%v", id, err)
		return UrbanizacionResult{}, pkg.NewInternal(err)
	}

	return UrbanizacionResult{
		Urbanizacion: updated,
		AffectedViews: []views.View{
			views.UrbanizacionList,
			views.UrbanizacionDetail(id),
			views.UrbanizacionUpdateForm(id),
		},
	}, nil
}

func (u *UrbanizacionUseCase) Delete(ctx context.Context, id string) (UrbanizacionResult, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return UrbanizacionResult{}, pkg.NewInternal(err)
	}
	if current.ID == "" {
		return UrbanizacionResult{}, pkg.NewNotFound("Urbanización no encontrada").
			WithField("id", "Urbanización especificada no existe")
	}

	lotes, err := u.repo.CountLotes(ctx, id)
	if err != nil {
		return UrbanizacionResult{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckUrbanizacionSinLotes(current.Nombre, lotes); ruleErr != nil {
		return UrbanizacionResult{}, ruleErr
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrForeignKeyViolation) {
			// A lote was created between the count and the delete.
			return UrbanizacionResult{}, pkg.NewConflict(fmt.Sprintf("No se puede eliminar la urbanización %q porque tiene lote(s) asociado(s)", current.Nombre))
		}
		log.Printf("[urbanizacion][usecase] delete failed id=%s err=%v", id, err)
		return UrbanizacionResult{}, pkg.NewInternal(err)
	}

	log.Printf("[urbanizacion][usecase] deleted id=%s nombre=%q", id, current.Nombre)
	return UrbanizacionResult{
		Urbanizacion:  current,
		AffectedViews: []views.View{views.UrbanizacionList},
	}, nil
}

func (u *UrbanizacionUseCase) GetByID(ctx context.Context, id string) (entities.Urbanizacion, error) {
	found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Urbanizacion{}, pkg.NewInternal(err)
	}
	if found.ID == "" {
		return entities.Urbanizacion{}, pkg.NewNotFound("Urbanización no encontrada")
	}
	return found, nil
}

func (u *UrbanizacionUseCase) List(ctx context.Context) ([]entities.Urbanizacion, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, pkg.NewInternal(err)
	}
	return all, nil
}
