package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/finance"
	"terranova_lotes/internal/domain/rules"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase/interfaces"
	"terranova_lotes/pkg"

	"github.com/google/uuid"
)

// FinanciamientoLoteResult is the success outcome of a financiamiento
// mutation.
type FinanciamientoLoteResult struct {
	Financiamiento entities.FinanciamientoLote
	Lote           entities.Lote
	Plan           entities.PlanFinanciamiento
	AffectedViews  []views.View
}

// IFinanciamientoLoteUseCase manages lot-plan financing bindings. A binding
// is a point-in-time quote, so the interface deliberately has no Update:
// changing a plan after binding must not retroactively alter the snapshot.
type IFinanciamientoLoteUseCase interface {
	Create(ctx context.Context, loteID, planFinanciamientoID string) (FinanciamientoLoteResult, error)
	Delete(ctx context.Context, id string) (FinanciamientoLoteResult, error)
	GetByID(ctx context.Context, id string) (entities.FinanciamientoLote, error)
	List(ctx context.Context) ([]entities.FinanciamientoLote, error)
}

type FinanciamientoLoteUseCase struct {
	repo     interfaces.IFinanciamientoLoteRepository
	loteRepo interfaces.ILoteRepository
	planRepo interfaces.IPlanFinanciamientoRepository
}

var _ IFinanciamientoLoteUseCase = (*FinanciamientoLoteUseCase)(nil)

func NewFinanciamientoLoteUseCase(
	repo interfaces.IFinanciamientoLoteRepository,
	loteRepo interfaces.ILoteRepository,
	planRepo interfaces.IPlanFinanciamientoRepository,
) *FinanciamientoLoteUseCase {
	return &FinanciamientoLoteUseCase{repo: repo, loteRepo: loteRepo, planRepo: planRepo}
}

func (u *FinanciamientoLoteUseCase) Create(ctx context.Context, loteID, planFinanciamientoID string) (FinanciamientoLoteResult, error) {
	lote, err := u.loteRepo.GetByID(ctx, loteID)
	if err != nil {
		return FinanciamientoLoteResult{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckLoteReferencia(asLote(lote)); ruleErr != nil {
		return FinanciamientoLoteResult{}, ruleErr
	}

	plan, err := u.planRepo.GetByID(ctx, planFinanciamientoID)
	if err != nil {
		return FinanciamientoLoteResult{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckPlanReferencia(asPlan(plan)); ruleErr != nil {
		return FinanciamientoLoteResult{}, ruleErr
	}
	if ruleErr := rules.CheckPlanActivo(plan); ruleErr != nil {
		return FinanciamientoLoteResult{}, ruleErr
	}

	existente, err := u.repo.GetByPair(ctx, loteID, planFinanciamientoID)
	if err != nil {
		return FinanciamientoLoteResult{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckFinanciamientoUnico(asFinanciamiento(existente), lote.Nombre, plan.Nombre); ruleErr != nil {
		return FinanciamientoLoteResult{}, ruleErr
	}

	// The plan's down-payment range was validated when the plan was written;
	// only the per-lot bound is checked here.
	cuotaInicial := finance.DownPayment(lote.PrecioContado, plan.TipoCuotaInicial, plan.ValorCuotaInicial)
	if ruleErr := rules.CheckCuotaInicial(cuotaInicial, lote.PrecioContado); ruleErr != nil {
		return FinanciamientoLoteResult{}, ruleErr
	}

	if plan.CantidadCuotas <= 0 {
		// Guarded at plan create/update; reaching this means corrupted data.
		return FinanciamientoLoteResult{}, pkg.NewInternal(fmt.Errorf("plan %s has non-positive cantidad de cuotas %d", plan.ID, plan.CantidadCuotas))
	}
	quote := finance.ComputeQuote(lote.PrecioContado, cuotaInicial, plan.PorcentajeAnual, plan.CantidadCuotas)

	created, err := u.repo.Create(ctx, entities.FinanciamientoLote{
		ID:                   uuid.NewString(),
		LoteID:               loteID,
		PlanFinanciamientoID: planFinanciamientoID,
		CuotaInicial:         quote.CuotaInicial,
		SaldoFinanciar:       quote.SaldoFinanciar,
		InteresTotal:         quote.InteresTotal,
		CuotaMensual:         quote.CuotaMensual,
		PrecioTotalCredito:   quote.PrecioTotalCredito,
		CreatedAt:            time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			// Lost a race against a concurrent binding of the same pair.
			return FinanciamientoLoteResult{}, rules.CheckFinanciamientoUnico(&entities.FinanciamientoLote{ID: "concurrent"}, lote.Nombre, plan.Nombre)
		}
		if errors.Is(err, interfaces.ErrForeignKeyViolation) {
			return FinanciamientoLoteResult{}, pkg.NewNotFound("El lote o plan de financiamiento seleccionado no es válido")
		}
		log.Printf("[financiamiento][usecase] create failed lote=%s plan=%s err=%v", loteID, planFinanciamientoID, err)
		return FinanciamientoLoteResult{}, pkg.NewInternal(err)
	}

	log.Printf("[financiamiento][usecase] created id=%s lote=%q plan=%q", created.ID, lote.Nombre, plan.Nombre)
	return FinanciamientoLoteResult{
		Financiamiento: created,
		Lote:           lote,
		Plan:           plan,
		AffectedViews: []views.View{
			views.LoteList,
			views.LoteDetail(loteID),
			views.PlanList,
		},
	}, nil
}

func (u *FinanciamientoLoteUseCase) Delete(ctx context.Context, id string) (FinanciamientoLoteResult, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return FinanciamientoLoteResult{}, pkg.NewInternal(err)
	}
	if current.ID == "" {
		return FinanciamientoLoteResult{}, pkg.NewNotFound("El financiamiento no existe")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[financiamiento][usecase] delete failed id=%s err=%v", id, err)
		return FinanciamientoLoteResult{}, pkg.NewInternal(err)
	}

	log.Printf("[financiamiento][usecase] deleted id=%s lote=%s", id, current.LoteID)
	return FinanciamientoLoteResult{
		Financiamiento: current,
		AffectedViews: []views.View{
			views.LoteList,
			views.LoteDetail(current.LoteID),
			views.PlanList,
		},
	}, nil
}

func (u *FinanciamientoLoteUseCase) GetByID(ctx context.Context, id string) (entities.FinanciamientoLote, error) {
	found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FinanciamientoLote{}, pkg.NewInternal(err)
	}
	if found.ID == "" {
		return entities.FinanciamientoLote{}, pkg.NewNotFound("El financiamiento no existe")
	}
	return found, nil
}

func (u *FinanciamientoLoteUseCase) List(ctx context.Context) ([]entities.FinanciamientoLote, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, pkg.NewInternal(err)
	}
	return all, nil
}

func asFinanciamiento(f entities.FinanciamientoLote) *entities.FinanciamientoLote {
	if f.ID == "" {
		return nil
	}
	return &f
}
