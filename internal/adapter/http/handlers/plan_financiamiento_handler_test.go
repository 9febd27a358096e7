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

func TestPlanFinanciamientoHandler_CreatePlanFinanciamiento(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tipo cuota inicial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanFinanciamientoUseCase(ctrl)
		h := NewPlanFinanciamientoHandler(uc)

		r := gin.New()
		r.POST("/v1/planes-financiamiento", h.CreatePlanFinanciamiento)

		req := httptest.NewRequest(http.MethodPost, "/v1/planes-financiamiento",
			bytes.NewBufferString(`{"nombre":"Plan 20/12","cantidad_cuotas":12}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success forwards activo flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanFinanciamientoUseCase(ctrl)
		h := NewPlanFinanciamientoHandler(uc)

		r := gin.New()
		r.POST("/v1/planes-financiamiento", h.CreatePlanFinanciamiento)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreatePlanFinanciamientoInput) (usecase.PlanFinanciamientoResult, error) {
				if in.Activo == nil || *in.Activo != false {
					t.Fatalf("expected activo pointer false, got %+v", in.Activo)
				}
				return usecase.PlanFinanciamientoResult{
					Plan:          entities.PlanFinanciamiento{ID: "plan-1", Nombre: in.Nombre},
					AffectedViews: []views.View{views.PlanList},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/planes-financiamiento",
			bytes.NewBufferString(`{"nombre":"Plan 20/12","porcentaje_anual":12,"cantidad_cuotas":12,"tipo_cuota_inicial":"PORCENTAJE","valor_cuota_inicial":20,"activo":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPlanFinanciamientoHandler_DeletePlanFinanciamiento(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked by financiamientos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanFinanciamientoUseCase(ctrl)
		h := NewPlanFinanciamientoHandler(uc)

		r := gin.New()
		r.DELETE("/v1/planes-financiamiento/:id", h.DeletePlanFinanciamiento)

		uc.EXPECT().Delete(gomock.Any(), "plan-1").
			Return(usecase.PlanFinanciamientoResult{}, pkg.NewConflict("No se puede eliminar el plan \"Plan 20/12\" porque tiene 1 financiamiento(s) asociado(s)"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/planes-financiamiento/plan-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("expected success=false, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanFinanciamientoUseCase(ctrl)
		h := NewPlanFinanciamientoHandler(uc)

		r := gin.New()
		r.DELETE("/v1/planes-financiamiento/:id", h.DeletePlanFinanciamiento)

		uc.EXPECT().Delete(gomock.Any(), "plan-1").Return(usecase.PlanFinanciamientoResult{
			Plan:          entities.PlanFinanciamiento{ID: "plan-1", Nombre: "Plan 20/12"},
			AffectedViews: []views.View{views.PlanList},
		}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/planes-financiamiento/plan-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
