package usecase

import (
	"context"
	"math"
	"testing"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase/interfaces"
	mock_interfaces "terranova_lotes/internal/usecase/interfaces/mocks"
	"terranova_lotes/pkg"

	"go.uber.org/mock/gomock"
)

type financiamientoMocks struct {
	repo     *mock_interfaces.MockIFinanciamientoLoteRepository
	loteRepo *mock_interfaces.MockILoteRepository
	planRepo *mock_interfaces.MockIPlanFinanciamientoRepository
}

func newFinanciamientoUseCase(t *testing.T) (*FinanciamientoLoteUseCase, financiamientoMocks) {
	ctrl := gomock.NewController(t)
	m := financiamientoMocks{
		repo:     mock_interfaces.NewMockIFinanciamientoLoteRepository(ctrl),
		loteRepo: mock_interfaces.NewMockILoteRepository(ctrl),
		planRepo: mock_interfaces.NewMockIPlanFinanciamientoRepository(ctrl),
	}
	return NewFinanciamientoLoteUseCase(m.repo, m.loteRepo, m.planRepo), m
}

func TestFinanciamientoLoteUseCase_Create(t *testing.T) {
	lote := entities.Lote{
		ID:            "lote-1",
		Nombre:        "A-12",
		SuperficieM2:  250,
		PrecioM2:      150,
		PrecioContado: 37500,
	}
	planPorcentaje := entities.PlanFinanciamiento{
		ID:                "plan-1",
		Nombre:            "Plan 20/12",
		PorcentajeAnual:   12,
		CantidadCuotas:    12,
		TipoCuotaInicial:  entities.TipoCuotaInicialPorcentaje,
		ValorCuotaInicial: 20,
		Activo:            true,
	}

	t.Run("percentage plan quote", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(planPorcentaje, nil)
		m.repo.EXPECT().GetByPair(gomock.Any(), "lote-1", "plan-1").Return(entities.FinanciamientoLote{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.FinanciamientoLote) (entities.FinanciamientoLote, error) {
				return f, nil
			})

		res, err := uc.Create(context.Background(), "lote-1", "plan-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f := res.Financiamiento
		for name, got := range map[string]struct{ got, want float64 }{
			"cuota inicial":        {f.CuotaInicial, 7500},
			"saldo a financiar":    {f.SaldoFinanciar, 30000},
			"interés total":        {f.InteresTotal, 3600},
			"cuota mensual":        {f.CuotaMensual, 2800},
			"precio total crédito": {f.PrecioTotalCredito, 37500 + 3600},
		} {
			if math.Abs(got.got-got.want) > 1e-9 {
				t.Fatalf("%s: expected %v, got %v", name, got.want, got.got)
			}
		}
		if res.Lote.ID != "lote-1" || res.Plan.ID != "plan-1" {
			t.Fatalf("expected result to echo lote and plan, got %+v", res)
		}
		if !hasView(res.AffectedViews, views.LoteDetail("lote-1")) || !hasView(res.AffectedViews, views.PlanList) {
			t.Fatalf("unexpected affected views: %v", res.AffectedViews)
		}
	})

	t.Run("fixed amount plan quote", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		plan := entities.PlanFinanciamiento{
			ID:                "plan-2",
			Nombre:            "Plan fijo",
			PorcentajeAnual:   10,
			CantidadCuotas:    24,
			TipoCuotaInicial:  entities.TipoCuotaInicialMontoFijo,
			ValorCuotaInicial: 5000,
			Activo:            true,
		}

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-2").Return(plan, nil)
		m.repo.EXPECT().GetByPair(gomock.Any(), "lote-1", "plan-2").Return(entities.FinanciamientoLote{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.FinanciamientoLote) (entities.FinanciamientoLote, error) {
				return f, nil
			})

		res, err := uc.Create(context.Background(), "lote-1", "plan-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f := res.Financiamiento
		if math.Abs(f.CuotaInicial-5000) > 1e-9 {
			t.Fatalf("expected cuota inicial 5000, got %v", f.CuotaInicial)
		}
		if math.Abs(f.SaldoFinanciar-32500) > 1e-9 {
			t.Fatalf("expected saldo 32500, got %v", f.SaldoFinanciar)
		}
		if math.Abs(f.InteresTotal-3250) > 1e-9 {
			t.Fatalf("expected interés 3250, got %v", f.InteresTotal)
		}
		if math.Abs(f.CuotaMensual-35750.0/24) > 1e-9 {
			t.Fatalf("expected cuota mensual %v, got %v", 35750.0/24, f.CuotaMensual)
		}
		if math.Abs(f.PrecioTotalCredito-40750) > 1e-9 {
			t.Fatalf("expected precio total 40750, got %v", f.PrecioTotalCredito)
		}
	})

	t.Run("duplicate pair", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(planPorcentaje, nil)
		m.repo.EXPECT().GetByPair(gomock.Any(), "lote-1", "plan-1").
			Return(entities.FinanciamientoLote{ID: "fin-1", LoteID: "lote-1", PlanFinanciamientoID: "plan-1"}, nil)

		_, err := uc.Create(context.Background(), "lote-1", "plan-1")
		requireKind(t, err, pkg.KindConflict)
	})

	t.Run("race lost at pair constraint", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(planPorcentaje, nil)
		m.repo.EXPECT().GetByPair(gomock.Any(), "lote-1", "plan-1").Return(entities.FinanciamientoLote{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.FinanciamientoLote{}, interfaces.ErrDuplicateKey)

		_, err := uc.Create(context.Background(), "lote-1", "plan-1")
		requireKind(t, err, pkg.KindConflict)
	})

	t.Run("inactive plan", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		inactive := planPorcentaje
		inactive.Activo = false

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(inactive, nil)

		_, err := uc.Create(context.Background(), "lote-1", "plan-1")
		requireKind(t, err, pkg.KindPreconditionFailed)
	})

	t.Run("lote missing", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Lote{}, nil)

		_, err := uc.Create(context.Background(), "missing", "plan-1")
		requireKind(t, err, pkg.KindNotFound)
	})

	t.Run("plan missing", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PlanFinanciamiento{}, nil)

		_, err := uc.Create(context.Background(), "lote-1", "missing")
		requireKind(t, err, pkg.KindNotFound)
	})

	t.Run("down payment equal to cash price is allowed", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		fullDown := entities.PlanFinanciamiento{
			ID:                "plan-3",
			Nombre:            "Contado diferido",
			PorcentajeAnual:   0,
			CantidadCuotas:    1,
			TipoCuotaInicial:  entities.TipoCuotaInicialMontoFijo,
			ValorCuotaInicial: 37500,
			Activo:            true,
		}

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-3").Return(fullDown, nil)
		m.repo.EXPECT().GetByPair(gomock.Any(), "lote-1", "plan-3").Return(entities.FinanciamientoLote{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.FinanciamientoLote) (entities.FinanciamientoLote, error) {
				return f, nil
			})

		res, err := uc.Create(context.Background(), "lote-1", "plan-3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Financiamiento.SaldoFinanciar != 0 {
			t.Fatalf("expected zero saldo, got %v", res.Financiamiento.SaldoFinanciar)
		}
	})

	t.Run("down payment above cash price", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		tooBig := entities.PlanFinanciamiento{
			ID:                "plan-4",
			Nombre:            "Excesivo",
			PorcentajeAnual:   10,
			CantidadCuotas:    12,
			TipoCuotaInicial:  entities.TipoCuotaInicialMontoFijo,
			ValorCuotaInicial: 37500.01,
			Activo:            true,
		}

		m.loteRepo.EXPECT().GetByID(gomock.Any(), "lote-1").Return(lote, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-4").Return(tooBig, nil)
		m.repo.EXPECT().GetByPair(gomock.Any(), "lote-1", "plan-4").Return(entities.FinanciamientoLote{}, nil)

		_, err := uc.Create(context.Background(), "lote-1", "plan-4")
		requireKind(t, err, pkg.KindPreconditionFailed)
	})
}

func TestFinanciamientoLoteUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.FinanciamientoLote{}, nil)

		_, err := uc.Delete(context.Background(), "missing")
		requireKind(t, err, pkg.KindNotFound)
	})

	t.Run("success reports stale views", func(t *testing.T) {
		uc, m := newFinanciamientoUseCase(t)

		current := entities.FinanciamientoLote{ID: "fin-1", LoteID: "lote-1", PlanFinanciamientoID: "plan-1"}
		m.repo.EXPECT().GetByID(gomock.Any(), "fin-1").Return(current, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "fin-1").Return(nil)

		res, err := uc.Delete(context.Background(), "fin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasView(res.AffectedViews, views.LoteDetail("lote-1")) {
			t.Fatalf("expected lot detail view, got %v", res.AffectedViews)
		}
	})
}
