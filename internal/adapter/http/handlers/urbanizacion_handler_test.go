package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"terranova_lotes/internal/adapter/http/handlers/mocks"
	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase"
	"terranova_lotes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUrbanizacionHandler_CreateUrbanizacion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing nombre", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUrbanizacionUseCase(ctrl)
		h := NewUrbanizacionHandler(uc)

		r := gin.New()
		r.POST("/v1/urbanizaciones", h.CreateUrbanizacion)

		req := httptest.NewRequest(http.MethodPost, "/v1/urbanizaciones", bytes.NewBufferString(`{"ubicacion":"Zona Norte"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUrbanizacionUseCase(ctrl)
		h := NewUrbanizacionHandler(uc)

		r := gin.New()
		r.POST("/v1/urbanizaciones", h.CreateUrbanizacion)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateUrbanizacionInput{Nombre: "Terranova", Ubicacion: "Zona Norte"}).
			Return(usecase.UrbanizacionResult{
				Urbanizacion:  entities.Urbanizacion{ID: "urb-1", Nombre: "Terranova", Ubicacion: "Zona Norte"},
				AffectedViews: []views.View{views.UrbanizacionList},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/urbanizaciones",
			bytes.NewBufferString(`{"nombre":"Terranova","ubicacion":"Zona Norte"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Success       bool     `json:"success"`
			AffectedViews []string `json:"affected_views"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || len(body.AffectedViews) != 1 || body.AffectedViews[0] != "urbanization-list" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate nombre", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUrbanizacionUseCase(ctrl)
		h := NewUrbanizacionHandler(uc)

		r := gin.New()
		r.POST("/v1/urbanizaciones", h.CreateUrbanizacion)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(usecase.UrbanizacionResult{}, pkg.NewConflict("Ya existe una urbanización con ese nombre").WithField("nombre", "Este nombre ya está en uso"))

		req := httptest.NewRequest(http.MethodPost, "/v1/urbanizaciones", bytes.NewBufferString(`{"nombre":"Terranova"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestUrbanizacionHandler_DeleteUrbanizacion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked by lotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUrbanizacionUseCase(ctrl)
		h := NewUrbanizacionHandler(uc)

		r := gin.New()
		r.DELETE("/v1/urbanizaciones/:id", h.DeleteUrbanizacion)

		uc.EXPECT().Delete(gomock.Any(), "urb-1").
			Return(usecase.UrbanizacionResult{}, pkg.NewConflict("No se puede eliminar la urbanización \"Terranova\" porque tiene 3 lote(s) asociado(s)"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/urbanizaciones/urb-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUrbanizacionUseCase(ctrl)
		h := NewUrbanizacionHandler(uc)

		r := gin.New()
		r.DELETE("/v1/urbanizaciones/:id", h.DeleteUrbanizacion)

		uc.EXPECT().Delete(gomock.Any(), "urb-1").Return(usecase.UrbanizacionResult{
			Urbanizacion:  entities.Urbanizacion{ID: "urb-1", Nombre: "Terranova"},
			AffectedViews: []views.View{views.UrbanizacionList},
		}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/urbanizaciones/urb-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
