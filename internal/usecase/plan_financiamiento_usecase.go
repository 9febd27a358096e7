package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/rules"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase/interfaces"
	"terranova_lotes/pkg"

	"github.com/google/uuid"
)

// CreatePlanFinanciamientoInput carries the shape-validated fields for a new
// plan. Activo defaults to true when nil.
type CreatePlanFinanciamientoInput struct {
	Nombre            string
	PorcentajeAnual   float64
	CantidadCuotas    int
	TipoCuotaInicial  entities.TipoCuotaInicial
	ValorCuotaInicial float64
	Activo            *bool
}

// UpdatePlanFinanciamientoInput is a partial patch; nil fields keep their
// current value.
type UpdatePlanFinanciamientoInput struct {
	Nombre            *string
	PorcentajeAnual   *float64
	CantidadCuotas    *int
	TipoCuotaInicial  *entities.TipoCuotaInicial
	ValorCuotaInicial *float64
	Activo            *bool
}

// PlanFinanciamientoResult is the success outcome of a plan mutation.
type PlanFinanciamientoResult struct {
	Plan          entities.PlanFinanciamiento
	AffectedViews []views.View
}

// IPlanFinanciamientoUseCase manages financing plan templates.
type IPlanFinanciamientoUseCase interface {
	Create(ctx context.Context, in CreatePlanFinanciamientoInput) (PlanFinanciamientoResult, error)
	Update(ctx context.Context, id string, in UpdatePlanFinanciamientoInput) (PlanFinanciamientoResult, error)
	Delete(ctx context.Context, id string) (PlanFinanciamientoResult, error)
	GetByID(ctx context.Context, id string) (entities.PlanFinanciamiento, error)
	List(ctx context.Context) ([]entities.PlanFinanciamiento, error)
}

type PlanFinanciamientoUseCase struct {
	repo interfaces.IPlanFinanciamientoRepository
}

var _ IPlanFinanciamientoUseCase = (*PlanFinanciamientoUseCase)(nil)

func NewPlanFinanciamientoUseCase(repo interfaces.IPlanFinanciamientoRepository) *PlanFinanciamientoUseCase {
	return &PlanFinanciamientoUseCase{repo: repo}
}

func (u *PlanFinanciamientoUseCase) Create(ctx context.Context, in CreatePlanFinanciamientoInput) (PlanFinanciamientoResult, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if appErr := validatePlanFields(in.Nombre, in.PorcentajeAnual, in.CantidadCuotas, in.TipoCuotaInicial); appErr != nil {
		return PlanFinanciamientoResult{}, appErr
	}
	// The down-payment range rule lives here, at the plan boundary; the
	// financiamiento manager trusts persisted plan data instead of re-deriving
	// the check.
	if ruleErr := rules.CheckRangoValorCuotaInicial(in.TipoCuotaInicial, in.ValorCuotaInicial); ruleErr != nil {
		return PlanFinanciamientoResult{}, ruleErr
	}

	existente, err := u.repo.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return PlanFinanciamientoResult{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckPlanNombreLibre(asPlan(existente), "", in.Nombre); ruleErr != nil {
		return PlanFinanciamientoResult{}, ruleErr
	}

	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.PlanFinanciamiento{
		ID:                uuid.NewString(),
		Nombre:            in.Nombre,
		PorcentajeAnual:   in.PorcentajeAnual,
		CantidadCuotas:    in.CantidadCuotas,
		TipoCuotaInicial:  in.TipoCuotaInicial,
		ValorCuotaInicial: in.ValorCuotaInicial,
		Activo:            activo,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return PlanFinanciamientoResult{}, rules.CheckPlanNombreLibre(&entities.PlanFinanciamiento{ID: "concurrent"}, "", in.Nombre)
		}
		log.Printf("[plan][usecase] create failed nombre=%q err=%v", in.Nombre, err)
		return PlanFinanciamientoResult{}, pkg.NewInternal(err)
	}

	log.Printf("[plan][usecase] created id=%s nombre=%q", created.ID, created.Nombre)
	return PlanFinanciamientoResult{
		Plan:          created,
		AffectedViews: []views.View{views.PlanList},
	}, nil
}

func (u *PlanFinanciamientoUseCase) Update(ctx context.Context, id string, in UpdatePlanFinanciamientoInput) (PlanFinanciamientoResult, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return PlanFinanciamientoResult{}, pkg.NewInternal(err)
	}
	if current.ID == "" {
		return PlanFinanciamientoResult{}, pkg.NewNotFound("El plan de financiamiento no existe")
	}

	merged := current
	if in.Nombre != nil {
		merged.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.PorcentajeAnual != nil {
		merged.PorcentajeAnual = *in.PorcentajeAnual
	}
	if in.CantidadCuotas != nil {
		merged.CantidadCuotas = *in.CantidadCuotas
	}
	if in.TipoCuotaInicial != nil {
		merged.TipoCuotaInicial = *in.TipoCuotaInicial
	}
	if in.ValorCuotaInicial != nil {
		merged.ValorCuotaInicial = *in.ValorCuotaInicial
	}
	if in.Activo != nil {
		merged.Activo = *in.Activo
	}

	if appErr := validatePlanFields(merged.Nombre, merged.PorcentajeAnual, merged.CantidadCuotas, merged.TipoCuotaInicial); appErr != nil {
		return PlanFinanciamientoResult{}, appErr
	}
	// Re-check the range whenever kind or value changed, against the
	// effective pair.
	if in.TipoCuotaInicial != nil || in.ValorCuotaInicial != nil {
		if ruleErr := rules.CheckRangoValorCuotaInicial(merged.TipoCuotaInicial, merged.ValorCuotaInicial); ruleErr != nil {
			return PlanFinanciamientoResult{}, ruleErr
		}
	}

	if merged.Nombre != current.Nombre {
		existente, err := u.repo.GetByNombre(ctx, merged.Nombre)
		if err != nil {
			return PlanFinanciamientoResult{}, pkg.NewInternal(err)
		}
		if ruleErr := rules.CheckPlanNombreLibre(asPlan(existente), id, merged.Nombre); ruleErr != nil {
			return PlanFinanciamientoResult{}, ruleErr
		}
	}

	merged.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, merged)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return PlanFinanciamientoResult{}, rules.CheckPlanNombreLibre(&entities.PlanFinanciamiento{ID: "concurrent"}, id, merged.Nombre)
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			// Deleted between the lookup and the statement.
			return PlanFinanciamientoResult{}, pkg.NewNotFound("El plan de financiamiento no existe")
		}
		log.Printf("[plan][usecase] update failed id=%s err=%v", id, err)
		return PlanFinanciamientoResult{}, pkg.NewInternal(err)
	}

	return PlanFinanciamientoResult{
		Plan: updated,
		AffectedViews: []views.View{
			views.PlanList,
			views.PlanDetail(id),
		},
	}, nil
}

func (u *PlanFinanciamientoUseCase) Delete(ctx context.Context, id string) (PlanFinanciamientoResult, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return PlanFinanciamientoResult{}, pkg.NewInternal(err)
	}
	if current.ID == "" {
		return PlanFinanciamientoResult{}, pkg.NewNotFound("El plan de financiamiento no existe")
	}

	financiamientos, err := u.repo.CountFinanciamientos(ctx, id)
	if err != nil {
		return PlanFinanciamientoResult{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckPlanSinFinanciamientos(current.Nombre, financiamientos); ruleErr != nil {
		return PlanFinanciamientoResult{}, ruleErr
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrForeignKeyViolation) {
			// A financiamiento was bound between the count and the delete.
			return PlanFinanciamientoResult{}, rules.CheckPlanSinFinanciamientos(current.Nombre, 1)
		}
		log.Printf("[plan][usecase] delete failed id=%s err=%v", id, err)
		return PlanFinanciamientoResult{}, pkg.NewInternal(err)
	}

	log.Printf("[plan][usecase] deleted id=%s nombre=%q", id, current.Nombre)
	return PlanFinanciamientoResult{
		Plan:          current,
		AffectedViews: []views.View{views.PlanList},
	}, nil
}

func (u *PlanFinanciamientoUseCase) GetByID(ctx context.Context, id string) (entities.PlanFinanciamiento, error) {
	found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PlanFinanciamiento{}, pkg.NewInternal(err)
	}
	if found.ID == "" {
		return entities.PlanFinanciamiento{}, pkg.NewNotFound("El plan de financiamiento no existe")
	}
	return found, nil
}

func (u *PlanFinanciamientoUseCase) List(ctx context.Context) ([]entities.PlanFinanciamiento, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, pkg.NewInternal(err)
	}
	return all, nil
}

func validatePlanFields(nombre string, porcentajeAnual float64, cantidadCuotas int, tipo entities.TipoCuotaInicial) *pkg.AppError {
	switch {
	case nombre == "" || utf8.RuneCountInString(nombre) > 100:
		return pkg.NewInvalidArgument("El nombre es requerido y no debe exceder de 100 caracteres").
			WithField("nombre", "El nombre es requerido y no debe exceder de 100 caracteres")
	case porcentajeAnual < 0 || porcentajeAnual > 100:
		return pkg.NewInvalidArgument("El porcentaje anual debe estar entre 0 y 100").
			WithField("porcentajeAnual", "El porcentaje anual debe estar entre 0 y 100")
	case cantidadCuotas <= 0:
		return pkg.NewInvalidArgument("La cantidad de cuotas debe ser mayor a 0").
			WithField("cantidadCuotas", "La cantidad de cuotas debe ser mayor a 0")
	case !entities.ValidTipoCuotaInicial(tipo):
		return pkg.NewInvalidArgument("Debe seleccionar un tipo de cuota inicial").
			WithField("tipoCuotaInicial", "Tipo de cuota inicial inválido")
	}
	return nil
}

func asPlan(p entities.PlanFinanciamiento) *entities.PlanFinanciamiento {
	if p.ID == "" {
		return nil
	}
	return &p
}
