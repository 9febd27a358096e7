package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase/interfaces"
	mock_interfaces "terranova_lotes/internal/usecase/interfaces/mocks"
	"terranova_lotes/pkg"

	"go.uber.org/mock/gomock"
)

func newUrbanizacionUseCase(t *testing.T) (*UrbanizacionUseCase, *mock_interfaces.MockIUrbanizacionRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUrbanizacionRepository(ctrl)
	return NewUrbanizacionUseCase(repo), repo
}

func TestUrbanizacionUseCase_Create(t *testing.T) {
	t.Run("success trims fields", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByNombre(gomock.Any(), "Terranova").Return(entities.Urbanizacion{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error) {
				return u, nil
			})

		res, err := uc.Create(context.Background(), CreateUrbanizacionInput{Nombre: "  Terranova  ", Ubicacion: " Zona Norte "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Urbanizacion.Nombre != "Terranova" || res.Urbanizacion.Ubicacion != "Zona Norte" {
			t.Fatalf("expected trimmed fields, got %+v", res.Urbanizacion)
		}
		if res.Urbanizacion.ID == "" {
			t.Fatalf("expected assigned id")
		}
		if !hasView(res.AffectedViews, views.UrbanizacionList) {
			t.Fatalf("expected urbanization list view, got %v", res.AffectedViews)
		}
	})

	t.Run("blank nombre", func(t *testing.T) {
		uc, _ := newUrbanizacionUseCase(t)

		_, err := uc.Create(context.Background(), CreateUrbanizacionInput{Nombre: "   "})
		requireKind(t, err, pkg.KindInvalidArgument)
	})

	t.Run("nombre taken", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByNombre(gomock.Any(), "Terranova").
			Return(entities.Urbanizacion{ID: "urb-9", Nombre: "Terranova"}, nil)

		_, err := uc.Create(context.Background(), CreateUrbanizacionInput{Nombre: "Terranova"})
		appErr := requireKind(t, err, pkg.KindConflict)
		if len(appErr.FieldErrors["nombre"]) == 0 {
			t.Fatalf("expected field error on nombre, got %+v", appErr.FieldErrors)
		}
	})

	t.Run("race lost at constraint", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByNombre(gomock.Any(), "Terranova").Return(entities.Urbanizacion{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Urbanizacion{}, interfaces.ErrDuplicateKey)

		_, err := uc.Create(context.Background(), CreateUrbanizacionInput{Nombre: "Terranova"})
		requireKind(t, err, pkg.KindConflict)
	})
}

func TestUrbanizacionUseCase_Update(t *testing.T) {
	current := entities.Urbanizacion{ID: "urb-1", Nombre: "Terranova", Ubicacion: "Zona Norte"}

	t.Run("not found", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Urbanizacion{}, nil)

		_, err := uc.Update(context.Background(), "missing", UpdateUrbanizacionInput{})
		requireKind(t, err, pkg.KindNotFound)
	})

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "urb-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error) {
				return u, nil
			})

		res, err := uc.Update(context.Background(), "urb-1", UpdateUrbanizacionInput{Ubicacion: strPtr("Zona Sur")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Urbanizacion.Nombre != "Terranova" {
			t.Fatalf("nombre must not change, got %q", res.Urbanizacion.Nombre)
		}
		if res.Urbanizacion.Ubicacion != "Zona Sur" {
			t.Fatalf("expected ubicacion Zona Sur, got %q", res.Urbanizacion.Ubicacion)
		}
		if !hasView(res.AffectedViews, views.UrbanizacionUpdateForm("urb-1")) {
			t.Fatalf("expected update form view, got %v", res.AffectedViews)
		}
	})

	t.Run("row vanished mid update reports not found", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "urb-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(entities.Urbanizacion{}, fmt.Errorf("%w: urbanizacion urb-1", interfaces.ErrNotFound))

		_, err := uc.Update(context.Background(), "urb-1", UpdateUrbanizacionInput{Ubicacion: strPtr("Zona Sur")})
		requireKind(t, err, pkg.KindNotFound)
	})

	t.Run("rename to taken nombre", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "urb-1").Return(current, nil)
		repo.EXPECT().GetByNombre(gomock.Any(), "Los Pinos").
			Return(entities.Urbanizacion{ID: "urb-2", Nombre: "Los Pinos"}, nil)

		_, err := uc.Update(context.Background(), "urb-1", UpdateUrbanizacionInput{Nombre: strPtr("Los Pinos")})
		requireKind(t, err, pkg.KindConflict)
	})

	t.Run("rename resolving to self is not a conflict", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "urb-1").Return(current, nil)
		// Trimmed input differs in spacing only; lookup returns the record itself.
		repo.EXPECT().GetByNombre(gomock.Any(), "Terra Nova").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error) {
				return u, nil
			})

		if _, err := uc.Update(context.Background(), "urb-1", UpdateUrbanizacionInput{Nombre: strPtr(" Terra Nova ")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUrbanizacionUseCase_Delete(t *testing.T) {
	current := entities.Urbanizacion{ID: "urb-1", Nombre: "Terranova"}

	t.Run("blocked while lotes exist", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "urb-1").Return(current, nil)
		repo.EXPECT().CountLotes(gomock.Any(), "urb-1").Return(3, nil)

		_, err := uc.Delete(context.Background(), "urb-1")
		appErr := requireKind(t, err, pkg.KindConflict)
		if !strings.Contains(appErr.Message, "3 lote(s)") {
			t.Fatalf("expected message to cite the count, got %q", appErr.Message)
		}
	})

	t.Run("succeeds when empty", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "urb-1").Return(current, nil)
		repo.EXPECT().CountLotes(gomock.Any(), "urb-1").Return(0, nil)
		repo.EXPECT().Delete(gomock.Any(), "urb-1").Return(nil)

		res, err := uc.Delete(context.Background(), "urb-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasView(res.AffectedViews, views.UrbanizacionList) {
			t.Fatalf("expected urbanization list view, got %v", res.AffectedViews)
		}
	})

	t.Run("race lost at foreign key", func(t *testing.T) {
		uc, repo := newUrbanizacionUseCase(t)

		repo.EXPECT().GetByID(gomock.Any(), "urb-1").Return(current, nil)
		repo.EXPECT().CountLotes(gomock.Any(), "urb-1").Return(0, nil)
		repo.EXPECT().Delete(gomock.Any(), "urb-1").Return(interfaces.ErrForeignKeyViolation)

		_, err := uc.Delete(context.Background(), "urb-1")
		requireKind(t, err, pkg.KindConflict)
	})
}
